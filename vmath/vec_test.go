package vmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCross(t *testing.T) {
	x := Vec[float64]{1, 0, 0}
	y := Vec[float64]{0, 1, 0}
	z := Vec[float64]{0, 0, 1}

	assert.Equal(t, z, Cross(x, y))
	assert.Equal(t, x, Cross(y, z))
	assert.Equal(t, Scale(-1.0, z), Cross(y, x))
}

func TestTriple(t *testing.T) {
	a := Vec[float64]{1, 0, 0}
	b := Vec[float64]{0, 1, 0}
	c := Vec[float64]{0, 0, 1}

	assert.Equal(t, 1.0, Triple(a, b, c))
	assert.Equal(t, -1.0, Triple(b, a, c))
	// Cyclic permutations preserve the sign.
	assert.Equal(t, Triple(a, b, c), Triple(b, c, a))
	// Coplanar vectors span no volume.
	assert.Equal(t, 0.0, Triple(a, b, Add(a, b)))
}

func TestNorm(t *testing.T) {
	assert.Equal(t, 5.0, Norm(Vec[float64]{3, 4, 0}))
	assert.Equal(t, 0.0, Norm(Vec[float64]{}))
}

func TestFloat32Ops(t *testing.T) {
	a := Vec[float32]{2, -1, 0.5}
	b := Vec[float32]{-1, 3, 2}

	assert.Equal(t, Vec[float32]{1, 2, 2.5}, Add(a, b))
	assert.Equal(t, Vec[float32]{3, -4, -1.5}, Sub(a, b))
	assert.InDelta(t, float64(Dot(a, b)), -4.0, 1e-6)
	assert.Equal(t, a, AddScaled(Vec[float32]{}, 1, a))
}
