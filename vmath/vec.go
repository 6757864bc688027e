// Package vmath provides fixed-size 3-component vector primitives shared by
// the quality evaluators and the smoothing helpers. All operations are pure,
// allocation-free and safe to call concurrently; they are generic over the
// floating-point width so the same formulas serve float32 and float64 grids.
package vmath

import (
	"math"

	"github.com/ajroetker/go-highway/hwy"
)

// Vec is a 3-component vector of either floating-point width.
type Vec[T hwy.Floats] [3]T

// Add returns a + b.
func Add[T hwy.Floats](a, b Vec[T]) Vec[T] {
	return Vec[T]{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

// Sub returns a - b.
func Sub[T hwy.Floats](a, b Vec[T]) Vec[T] {
	return Vec[T]{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// Scale returns s*v.
func Scale[T hwy.Floats](s T, v Vec[T]) Vec[T] {
	return Vec[T]{s * v[0], s * v[1], s * v[2]}
}

// AddScaled returns v + s*w.
func AddScaled[T hwy.Floats](v Vec[T], s T, w Vec[T]) Vec[T] {
	return Vec[T]{v[0] + s*w[0], v[1] + s*w[1], v[2] + s*w[2]}
}

// Dot returns the scalar product a·b.
func Dot[T hwy.Floats](a, b Vec[T]) T {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Cross returns the vector product a×b.
func Cross[T hwy.Floats](a, b Vec[T]) Vec[T] {
	return Vec[T]{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Triple returns the scalar triple product a·(b×c), the signed volume of the
// parallelepiped spanned by the three vectors.
func Triple[T hwy.Floats](a, b, c Vec[T]) T {
	return Dot(a, Cross(b, c))
}

// Norm returns the Euclidean length of v. A zero-length input yields zero;
// downstream divisions by it propagate Inf/NaN rather than being clamped.
func Norm[T hwy.Floats](v Vec[T]) T {
	return T(math.Sqrt(float64(Dot(v, v))))
}
