package quality

import (
	"fmt"

	"github.com/notargets/gocfd/DG3D/mesh"
	"github.com/notargets/gocfd/DG3D/mesh/readers"

	"github.com/meshforge/cellquality/topology"
	"github.com/meshforge/cellquality/vmath"
)

// FromTetMesh builds a Grid from a gocfd tetrahedral mesh. Vertex
// coordinates are copied; connectivity runs are the element-to-vertex rows.
func FromTetMesh(m *mesh.Mesh) (*Grid[float64], error) {
	if m.NumElements != len(m.EtoV) {
		return nil, fmt.Errorf("mesh reports %d elements but EtoV has %d rows",
			m.NumElements, len(m.EtoV))
	}
	g := &Grid[float64]{
		Points:    make([]vmath.Vec[float64], len(m.Vertices)),
		Offsets:   make([]int64, 0, m.NumElements+1),
		CellTypes: make([]topology.CellType, 0, m.NumElements),
	}
	for i, v := range m.Vertices {
		g.Points[i] = vmath.Vec[float64]{v[0], v[1], v[2]}
	}
	g.Offsets = append(g.Offsets, 0)
	for k, ev := range m.EtoV {
		if len(ev) != 4 {
			return nil, fmt.Errorf("element %d has %d vertices, want tetrahedra", k, len(ev))
		}
		for _, v := range ev {
			g.Connectivity = append(g.Connectivity, int64(v))
		}
		g.Offsets = append(g.Offsets, int64(len(g.Connectivity)))
		g.CellTypes = append(g.CellTypes, topology.Tetra)
	}
	return g, nil
}

// ReadTetMesh reads a mesh file through the gocfd readers and converts it.
func ReadTetMesh(path string) (*Grid[float64], error) {
	m, err := readers.ReadMeshFile(path)
	if err != nil {
		return nil, err
	}
	return FromTetMesh(m)
}
