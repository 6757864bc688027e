// Package smoothing provides the geometric repair helpers that share the
// quality engine's topology tables: midside-node relaxation for quadratic
// cells and a GETMe-style corrective transform for degenerate wedges.
package smoothing

import (
	"fmt"
	"sync"

	"github.com/ajroetker/go-highway/hwy"

	"github.com/meshforge/cellquality/quality"
	"github.com/meshforge/cellquality/topology"
	"github.com/meshforge/cellquality/vmath"
)

// Relax blends every midside node of the quadratic cells in g toward the
// arithmetic mean of its two parent corners:
//
//	new = (1-factor)*old + factor*(parent0+parent1)/2
//
// factor 0 leaves the grid untouched, factor 1 straightens all edges.
// Points are modified in place. Midside nodes shared between cells have the
// same parent corners in every cell, so the blend is well defined; targets
// are snapshotted before any point moves, which also makes the parallel
// update deterministic.
func Relax[T hwy.Floats](g *quality.Grid[T], factor float64, workers int) error {
	if factor < 0 || factor > 1 {
		return fmt.Errorf("relaxation factor %v outside [0,1]", factor)
	}
	if err := g.Validate(); err != nil {
		return err
	}

	target := make([]vmath.Vec[T], len(g.Points))
	midside := make([]bool, len(g.Points))
	for i := 0; i < g.NumCells(); i++ {
		d, ok := topology.Lookup(g.CellTypes[i])
		if !ok || !d.Quadratic {
			continue
		}
		cell := g.Cell(i)
		if len(cell) < d.Nodes {
			continue
		}
		for e, ed := range d.Edges {
			m := cell[d.Corners+e]
			pa := g.Points[cell[ed[0]]]
			pb := g.Points[cell[ed[1]]]
			target[m] = vmath.Scale(T(0.5), vmath.Add(pa, pb))
			midside[m] = true
		}
	}

	f := T(factor)
	parallelBlocks(len(g.Points), workers, func(lo, hi int) {
		for p := lo; p < hi; p++ {
			if !midside[p] {
				continue
			}
			g.Points[p] = vmath.AddScaled(vmath.Scale(1-f, g.Points[p]), f, target[p])
		}
	})
	return nil
}

// parallelBlocks mirrors the dispatcher's block split: contiguous disjoint
// ranges, one goroutine each, no synchronization on writes.
func parallelBlocks(n, workers int, fn func(lo, hi int)) {
	if workers <= 0 {
		workers = quality.DefaultWorkers
	}
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		fn(0, n)
		return
	}
	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fn(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}
