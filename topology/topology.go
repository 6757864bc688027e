// Package topology describes the eight supported cell topologies and carries
// the constant tables the Jacobian evaluators are driven by: per-corner
// edge-neighbor triples for linear cells, and per-node derivative stencils
// for quadratic (midside-node) cells. All tables are built once at package
// load and never mutated, so they are shared freely across workers.
package topology

// CellType identifies the element topology of a grid cell. The numeric
// values follow the VTK unstructured-grid vocabulary so tags produced by
// result-file readers can be used directly.
type CellType uint8

const (
	Tetra      CellType = 10 // 4-node linear tetrahedron
	Hexahedron CellType = 12 // 8-node linear hexahedron
	Wedge      CellType = 13 // 6-node linear wedge (triangular prism)
	Pyramid    CellType = 14 // 5-node linear pyramid

	QuadraticTetra      CellType = 24 // 10-node quadratic tetrahedron
	QuadraticHexahedron CellType = 25 // 20-node quadratic hexahedron
	QuadraticWedge      CellType = 26 // 15-node quadratic wedge
	QuadraticPyramid    CellType = 27 // 13-node quadratic pyramid
)

// Term is one weighted node reference in a derivative stencil.
type Term struct {
	Node   int // local node index within the cell
	Weight float64
}

// Stencil holds, for one sample node, the three signed linear combinations
// of node positions that form the Jacobian basis vectors at that node. The
// coefficients are the partial derivatives of the topology's shape functions
// evaluated at the node's natural coordinates.
type Stencil [3][]Term

// Descriptor is the immutable compiled-in description of one cell topology.
type Descriptor struct {
	Type      CellType
	Name      string
	Corners   int  // corner node count
	Nodes     int  // total node count; equals Corners for linear types
	Quadratic bool // true for midside-node topologies

	// Linear is the corner-subset topology used when a quadratic cell is
	// evaluated with midside nodes ignored. For linear types it is Type.
	Linear CellType

	// Norm scales the minimum scaled Jacobian so the topology's ideal
	// reference cell scores 1.0 (pyramid excepted, see the constant).
	Norm float64

	// CornerBasis lists, per sampled corner c, the three local node indices
	// whose difference vectors to c form a right-handed Jacobian basis.
	CornerBasis [][3]int

	// Edges lists the corner endpoints of each edge, in midside-node order.
	// Midside node Corners+i lies on Edges[i]. Empty for linear types.
	Edges [][2]int

	// Samples holds the per-node derivative stencils of quadratic types,
	// one per sample node. Empty for linear types.
	Samples []Stencil
}

var descriptors = map[CellType]*Descriptor{}

func register(d *Descriptor) {
	descriptors[d.Type] = d
}

// Lookup returns the descriptor for t, or ok=false when t is not one of the
// eight supported topologies.
func Lookup(t CellType) (d *Descriptor, ok bool) {
	d, ok = descriptors[t]
	return
}

// Supported reports whether t is one of the eight supported topologies.
func Supported(t CellType) bool {
	_, ok := descriptors[t]
	return ok
}

// String returns the descriptor name, or "unsupported" for unknown tags.
func (t CellType) String() string {
	if d, ok := descriptors[t]; ok {
		return d.Name
	}
	return "unsupported"
}
