package quality

import (
	"math"

	"github.com/ajroetker/go-highway/hwy"

	"github.com/meshforge/cellquality/topology"
	"github.com/meshforge/cellquality/vmath"
)

// scaledJacobian is the triple product of the three basis vectors divided by
// the product of their lengths. Zero-length vectors are not special-cased;
// the division propagates Inf/NaN as documented.
func scaledJacobian[T hwy.Floats](e0, e1, e2 vmath.Vec[T]) T {
	det := vmath.Triple(e0, e1, e2)
	return det / (vmath.Norm(e0) * vmath.Norm(e1) * vmath.Norm(e2))
}

// linearQuality computes the minimum scaled Jacobian over the corner nodes
// of one cell, using the topology's edge-neighbor table. Only the first
// d.Corners entries of cell are read, so a quadratic cell's corner subset
// can be passed directly.
func linearQuality[T hwy.Floats](pts []vmath.Vec[T], cell []int64, d *topology.Descriptor) T {
	min := T(math.Inf(1))
	for c, nbrs := range d.CornerBasis {
		p := pts[cell[c]]
		e0 := vmath.Sub(pts[cell[nbrs[0]]], p)
		e1 := vmath.Sub(pts[cell[nbrs[1]]], p)
		e2 := vmath.Sub(pts[cell[nbrs[2]]], p)
		q := scaledJacobian(e0, e1, e2)
		if math.IsNaN(float64(q)) {
			return q
		}
		if q < min {
			min = q
		}
	}
	return min * T(d.Norm)
}

// quadraticQuality computes the minimum scaled Jacobian over all sample
// nodes of a quadratic cell, assembling each node's basis vectors from its
// derivative stencil.
func quadraticQuality[T hwy.Floats](pts []vmath.Vec[T], cell []int64, d *topology.Descriptor) T {
	min := T(math.Inf(1))
	for _, st := range d.Samples {
		var e [3]vmath.Vec[T]
		for k := 0; k < 3; k++ {
			for _, term := range st[k] {
				e[k] = vmath.AddScaled(e[k], T(term.Weight), pts[cell[term.Node]])
			}
		}
		q := scaledJacobian(e[0], e[1], e[2])
		if math.IsNaN(float64(q)) {
			return q
		}
		if q < min {
			min = q
		}
	}
	return min * T(d.Norm)
}

// cellQuality evaluates one cell, dispatching on its topology tag. Cells
// with unsupported tags, or with fewer nodes than their topology requires,
// yield NaN.
func cellQuality[T hwy.Floats](g *Grid[T], i int, asLinear bool) T {
	d, ok := topology.Lookup(g.CellTypes[i])
	if !ok {
		return T(math.NaN())
	}
	cell := g.Cell(i)
	if len(cell) < d.Nodes {
		return T(math.NaN())
	}
	if d.Quadratic && !asLinear {
		return quadraticQuality(g.Points, cell, d)
	}
	if d.Quadratic {
		ld, _ := topology.Lookup(d.Linear)
		return linearQuality(g.Points, cell, ld)
	}
	return linearQuality(g.Points, cell, d)
}
