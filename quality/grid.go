// Package quality computes the minimum scaled Jacobian of every cell in an
// unstructured mesh. Cells are described by a CSR-style connectivity layout
// and a per-cell topology tag; evaluation is table-driven over the eight
// supported topologies and generic over the coordinate precision.
package quality

import (
	"fmt"

	"github.com/ajroetker/go-highway/hwy"

	"github.com/meshforge/cellquality/topology"
	"github.com/meshforge/cellquality/vmath"
)

// Grid is the caller-owned mesh view the engine evaluates. All slices are
// read-only for the duration of a batch call; the engine allocates nothing
// but the output array.
type Grid[T hwy.Floats] struct {
	// Points holds the node coordinates, indexed by Connectivity.
	Points []vmath.Vec[T]

	// Connectivity is the flat node-index buffer, one contiguous run per
	// cell. Indices are 64-bit so large grids need no repacking.
	Connectivity []int64

	// Offsets marks the start of each cell's run within Connectivity.
	// Length is NumCells()+1 with Offsets[0] == 0; cell i owns
	// Connectivity[Offsets[i]:Offsets[i+1]].
	Offsets []int64

	// CellTypes tags each cell with its topology. Unrecognized tags are
	// not an error; such cells evaluate to NaN.
	CellTypes []topology.CellType
}

// NumCells returns the cell count.
func (g *Grid[T]) NumCells() int {
	return len(g.CellTypes)
}

// Cell returns the node-index run of cell i.
func (g *Grid[T]) Cell(i int) []int64 {
	return g.Connectivity[g.Offsets[i]:g.Offsets[i+1]]
}

// Validate checks the structural invariants of the grid: offset table shape
// and monotonicity, and connectivity indices in range. Geometry is not
// inspected; degenerate cells are a per-cell concern of the evaluators.
func (g *Grid[T]) Validate() error {
	n := g.NumCells()
	if n == 0 && len(g.Offsets) == 0 && len(g.Connectivity) == 0 {
		return nil
	}
	if len(g.Offsets) != n+1 {
		return fmt.Errorf("offsets length %d does not match %d cells (want %d)",
			len(g.Offsets), n, n+1)
	}
	if n > 0 && g.Offsets[0] != 0 {
		return fmt.Errorf("offsets must start at 0, got %d", g.Offsets[0])
	}
	for i := 0; i < n; i++ {
		if g.Offsets[i+1] <= g.Offsets[i] {
			return fmt.Errorf("offsets not strictly increasing at cell %d: %d -> %d",
				i, g.Offsets[i], g.Offsets[i+1])
		}
	}
	if len(g.Offsets) > 0 && g.Offsets[n] != int64(len(g.Connectivity)) {
		return fmt.Errorf("final offset %d does not match connectivity length %d",
			g.Offsets[n], len(g.Connectivity))
	}
	np := int64(len(g.Points))
	for i, idx := range g.Connectivity {
		if idx < 0 || idx >= np {
			return fmt.Errorf("connectivity index %d at position %d out of range [0,%d)",
				idx, i, np)
		}
	}
	return nil
}
