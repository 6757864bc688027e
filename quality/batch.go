package quality

import (
	"fmt"
	"math"
	"sync"

	"github.com/ajroetker/go-highway/hwy"

	"github.com/meshforge/cellquality/topology"
)

// DefaultWorkers is the worker-pool size used when Config.Workers is zero.
const DefaultWorkers = 4

// Config controls a batch quality evaluation.
type Config struct {
	// Workers is the number of goroutines the cell range is blocked
	// across. Zero selects DefaultWorkers. Results are bit-identical for
	// any worker count: each cell depends only on its own inputs and each
	// worker writes a disjoint output range.
	Workers int

	// AsLinear forces corner-only evaluation of quadratic cells, ignoring
	// midside positions. Use it when curved-geometry quality is not
	// wanted or midside placement is unreliable.
	AsLinear bool

	// Strict fails the call when a supported cell evaluates to a
	// non-finite quality (degenerate geometry). The default leaves the
	// historical behavior: Inf/NaN propagate silently into the output.
	Strict bool
}

// CellQuality computes the minimum scaled Jacobian of every cell in g,
// returning one scalar per cell in cell order. Supported cells score near
// 1.0 when well-shaped, <= 0 when inverted; cells with unsupported topology
// tags yield NaN. The grid is validated up front and the call fails outright
// on malformed offsets or out-of-range connectivity.
func CellQuality[T hwy.Floats](g *Grid[T], cfg Config) ([]T, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	n := g.NumCells()
	out := make([]T, n)
	if n == 0 {
		return out, nil
	}

	parallelBlocks(n, cfg.Workers, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			out[i] = cellQuality(g, i, cfg.AsLinear)
		}
	})

	if cfg.Strict {
		for i, q := range out {
			if !topology.Supported(g.CellTypes[i]) {
				continue
			}
			if q64 := float64(q); math.IsNaN(q64) || math.IsInf(q64, 0) {
				return nil, fmt.Errorf("degenerate geometry in cell %d (%s): quality %v",
					i, g.CellTypes[i], q)
			}
		}
	}
	return out, nil
}

// parallelBlocks splits [0,n) into contiguous blocks, one per worker, and
// runs fn on each block concurrently. Blocks are disjoint so fn may write
// shared output without synchronization.
func parallelBlocks(n, workers int, fn func(lo, hi int)) {
	if workers <= 0 {
		workers = DefaultWorkers
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
