package smoothing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshforge/cellquality/quality"
	"github.com/meshforge/cellquality/topology"
	"github.com/meshforge/cellquality/vmath"
)

var (
	regularTet = []vmath.Vec[float64]{
		{0, 0, 0}, {1, 0, 0}, {0.5, math.Sqrt(3) / 2, 0},
		{0.5, math.Sqrt(3) / 6, math.Sqrt(6) / 3},
	}
	unitCube = [8]vmath.Vec[float64]{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
		{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
	}
	equiWedge = [6]vmath.Vec[float64]{
		{0, 0, 0}, {1, 0, 0}, {0.5, math.Sqrt(3) / 2, 0},
		{0, 0, 1}, {1, 0, 1}, {0.5, math.Sqrt(3) / 2, 1},
	}
)

func singleCell(pts []vmath.Vec[float64], tag topology.CellType) *quality.Grid[float64] {
	conn := make([]int64, len(pts))
	for i := range conn {
		conn[i] = int64(i)
	}
	return &quality.Grid[float64]{
		Points:       pts,
		Connectivity: conn,
		Offsets:      []int64{0, int64(len(pts))},
		CellTypes:    []topology.CellType{tag},
	}
}

// quadTetGrid is a quadratic tetrahedron over regularTet with straight edges.
func quadTetGrid() *quality.Grid[float64] {
	d, _ := topology.Lookup(topology.QuadraticTetra)
	pts := append([]vmath.Vec[float64]{}, regularTet...)
	for _, ed := range d.Edges {
		pts = append(pts, vmath.Scale(0.5, vmath.Add(pts[ed[0]], pts[ed[1]])))
	}
	return singleCell(pts, topology.QuadraticTetra)
}

func cellQuality(t *testing.T, g *quality.Grid[float64]) float64 {
	t.Helper()
	q, err := quality.CellQuality(g, quality.Config{})
	require.NoError(t, err)
	return q[0]
}

func TestHexVolume(t *testing.T) {
	cube := unitCube
	assert.InDelta(t, 1.0, HexVolume(&cube), 1e-15)

	// Shearing preserves volume.
	for i := range cube {
		cube[i][0] += 0.75 * cube[i][2]
	}
	assert.InDelta(t, 1.0, HexVolume(&cube), 1e-12)

	// Inverted orientation flips the sign.
	cube = unitCube
	cube[0], cube[1] = cube[1], cube[0]
	cube[3], cube[2] = cube[2], cube[3]
	cube[4], cube[5] = cube[5], cube[4]
	cube[7], cube[6] = cube[6], cube[7]
	assert.InDelta(t, -1.0, HexVolume(&cube), 1e-12)
}

func TestWedgeVolume(t *testing.T) {
	right := [6]vmath.Vec[float64]{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0},
		{0, 0, 1}, {1, 0, 1}, {0, 1, 1},
	}
	assert.InDelta(t, 0.5, WedgeVolume(&right), 1e-15)

	equi := equiWedge
	assert.InDelta(t, math.Sqrt(3)/4, WedgeVolume(&equi), 1e-12)

	// Reversing the triangle winding flips the sign.
	right[1], right[2] = right[2], right[1]
	right[4], right[5] = right[5], right[4]
	assert.InDelta(t, -0.5, WedgeVolume(&right), 1e-15)
}

func TestRepairWedgeIdeal(t *testing.T) {
	p := equiWedge
	v0 := RepairWedge(&p)

	assert.InDelta(t, math.Sqrt(3)/4, v0, 1e-12)
	assert.InDelta(t, v0, WedgeVolume(&p), 1e-12)

	// An ideal wedge maps to an ideal wedge: the transform keeps the
	// three-fold and top-bottom symmetry, so the quality stays at 1.
	assert.InDelta(t, 1.0, cellQuality(t, singleCell(p[:], topology.Wedge)), 1e-9)
}

func TestRepairWedgeCollapsedTop(t *testing.T) {
	p := equiWedge
	top := vmath.Vec[float64]{0.5, math.Sqrt(3) / 6, 1}
	p[3], p[4], p[5] = top, top, top

	// The collapsed cell has zero-length top edges and evaluates to NaN.
	assert.True(t, math.IsNaN(cellQuality(t, singleCell(p[:], topology.Wedge))))

	v0 := RepairWedge(&p)
	assert.InDelta(t, math.Sqrt(3)/12, v0, 1e-12)
	assert.InDelta(t, v0, WedgeVolume(&p), 1e-12)

	// The dual construction is symmetric under the cell's remaining
	// three-fold symmetry, so the repaired wedge is again a right prism
	// over an equilateral triangle.
	assert.InDelta(t, 1.0, cellQuality(t, singleCell(p[:], topology.Wedge)), 1e-9)
}

func TestRepairWedgeKeepsCentroid(t *testing.T) {
	p := equiWedge
	p[4] = vmath.Vec[float64]{1.4, 0.3, 1.2}

	var g0 vmath.Vec[float64]
	for _, q := range p {
		g0 = vmath.Add(g0, q)
	}
	g0 = vmath.Scale(1.0/6.0, g0)

	RepairWedge(&p)

	var g1 vmath.Vec[float64]
	for _, q := range p {
		g1 = vmath.Add(g1, q)
	}
	g1 = vmath.Scale(1.0/6.0, g1)

	assert.InDelta(t, g0[0], g1[0], 1e-12)
	assert.InDelta(t, g0[1], g1[1], 1e-12)
	assert.InDelta(t, g0[2], g1[2], 1e-12)
}

func TestRelaxFactorRange(t *testing.T) {
	g := quadTetGrid()
	assert.Error(t, Relax(g, -0.1, 1))
	assert.Error(t, Relax(g, 1.1, 1))
}

func TestRelaxStraightensEdges(t *testing.T) {
	g := quadTetGrid()
	mid := g.Points[4] // midside of edge 0-1
	g.Points[4] = vmath.Add(mid, vmath.Vec[float64]{0, 0, 0.3})
	require.Less(t, cellQuality(t, g), 1.0)

	require.NoError(t, Relax(g, 1, 3))
	assert.Equal(t, mid, g.Points[4])
	assert.InDelta(t, 1.0, cellQuality(t, g), 1e-12)
}

func TestRelaxPartialBlend(t *testing.T) {
	g := quadTetGrid()
	mid := g.Points[4]
	bumped := vmath.Add(mid, vmath.Vec[float64]{0, 0, 0.4})
	g.Points[4] = bumped

	require.NoError(t, Relax(g, 0.25, 1))
	want := vmath.AddScaled(vmath.Scale(0.75, bumped), 0.25, mid)
	for k := 0; k < 3; k++ {
		assert.InDelta(t, want[k], g.Points[4][k], 1e-15)
	}
}

func TestRelaxZeroFactorIsNoop(t *testing.T) {
	g := quadTetGrid()
	g.Points[4] = vmath.Add(g.Points[4], vmath.Vec[float64]{0.1, 0.2, 0.3})
	before := append([]vmath.Vec[float64]{}, g.Points...)

	require.NoError(t, Relax(g, 0, 2))
	assert.Equal(t, before, g.Points)
}

func TestRelaxIgnoresLinearCells(t *testing.T) {
	g := singleCell(append([]vmath.Vec[float64]{}, regularTet...), topology.Tetra)
	before := append([]vmath.Vec[float64]{}, g.Points...)

	require.NoError(t, Relax(g, 1, 1))
	assert.Equal(t, before, g.Points)
}
