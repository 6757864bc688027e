package smoothing

import (
	"math"

	"github.com/ajroetker/go-highway/hwy"

	"github.com/meshforge/cellquality/vmath"
)

// wedgeKappa pushes the triangle-face dual centroids away from the cell
// centroid before the dual faces are formed, compensating the flatness of
// the wedge dual. Derived from the ideal wedge aspect (the 2/sqrt(3) family
// the wedge normalization comes from).
const wedgeKappa = 0.57735026918962576 // 1/sqrt(3)

// RepairWedge applies a GETMe-style corrective transform to a degenerate
// wedge, in place: the five face centroids form a dual element, each corner
// is reprojected along the outward normal of its dual face, and the result
// is rescaled uniformly about its centroid so the volume matches the input
// cell. Returns the original (pre-repair) signed volume.
//
// The transform is pure and local to the six corners; scheduling (when a
// wedge is bad enough to repair) is the caller's concern.
func RepairWedge[T hwy.Floats](p *[6]vmath.Vec[T]) T {
	v0 := WedgeVolume(p)

	var g vmath.Vec[T]
	for _, q := range p {
		g = vmath.Add(g, q)
	}
	g = vmath.Scale(1.0/6.0, g)

	// Face centroids: two triangles, three quads.
	cB := vmath.Scale(1.0/3.0, vmath.Add(vmath.Add(p[0], p[1]), p[2]))
	cT := vmath.Scale(1.0/3.0, vmath.Add(vmath.Add(p[3], p[4]), p[5]))
	q0 := vmath.Scale(0.25, vmath.Add(vmath.Add(p[0], p[1]), vmath.Add(p[4], p[3])))
	q1 := vmath.Scale(0.25, vmath.Add(vmath.Add(p[1], p[2]), vmath.Add(p[5], p[4])))
	q2 := vmath.Scale(0.25, vmath.Add(vmath.Add(p[2], p[0]), vmath.Add(p[3], p[5])))

	// Dual vertices; the triangle centroids are blended outward.
	dB := vmath.AddScaled(g, 1+T(wedgeKappa), vmath.Sub(cB, g))
	dT := vmath.AddScaled(g, 1+T(wedgeKappa), vmath.Sub(cT, g))

	// Dual triangular faces, one per corner, wound so the normal points
	// outward (toward the corner it replaces).
	faces := [6][3]vmath.Vec[T]{
		{dB, q0, q2},
		{dB, q1, q0},
		{dB, q2, q1},
		{dT, q2, q0},
		{dT, q0, q1},
		{dT, q1, q2},
	}

	var np [6]vmath.Vec[T]
	for i, f := range faces {
		n := vmath.Cross(vmath.Sub(f[1], f[0]), vmath.Sub(f[2], f[0]))
		c := vmath.Scale(1.0/3.0, vmath.Add(vmath.Add(f[0], f[1]), f[2]))
		// GETMe normal scaling: n / sqrt(|n|) keeps the step length
		// proportional to the dual face size.
		np[i] = vmath.AddScaled(c, 1/T(math.Sqrt(float64(vmath.Norm(n)))), n)
	}

	// Recenter on the original centroid, then rescale uniformly so the
	// repaired cell keeps the original volume.
	var ng vmath.Vec[T]
	for _, q := range np {
		ng = vmath.Add(ng, q)
	}
	ng = vmath.Scale(1.0/6.0, ng)
	for i := range np {
		np[i] = vmath.Add(g, vmath.Sub(np[i], ng))
	}
	v1 := WedgeVolume(&np)
	s := T(math.Cbrt(float64(v0 / v1)))
	for i := range np {
		p[i] = vmath.AddScaled(g, s, vmath.Sub(np[i], g))
	}
	return v0
}
