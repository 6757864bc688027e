package topology

import "math"

// Normalization constants. Each scales the minimum scaled Jacobian of its
// topology so the ideal reference cell scores 1.0: the regular tetrahedron,
// the right wedge over an equilateral triangle, and the cube. The pyramid
// constant follows the historical kernel; no pyramid reaches exactly 1.0
// under corner sampling, the equilateral (half-octahedron) pyramid peaks at
// sqrt(3*sqrt(3)/8) ~= 0.8059.
var (
	tetraNorm   = math.Sqrt2
	pyramidNorm = math.Sqrt(3*math.Sqrt(3)) / 2
	wedgeNorm   = 2 / math.Sqrt(3)
	hexNorm     = 1.0
)

// Corner orientation convention: a cell has positive Jacobian when its
// corners are ordered VTK-style, with the first face (tetra base 0-1-2, hex
// and pyramid base quad, wedge triangle 0-1-2) wound counterclockwise as
// seen from inside the cell. The neighbor triples below are ordered so that
// det(e0,e1,e2) is positive for such cells at every sampled corner.

// tetNeighbors[c] are the three corners joined to corner c by an edge.
var tetNeighbors = [][3]int{
	{1, 2, 3},
	{2, 0, 3},
	{0, 1, 3},
	{1, 0, 2},
}

// pyrNeighbors samples the four base corners against (next, prev, apex).
// The isoparametric map is singular at the apex, so the apex sample uses
// three of its four downward edges instead.
var pyrNeighbors = [][3]int{
	{1, 3, 4},
	{2, 0, 4},
	{3, 1, 4},
	{0, 2, 4},
	{2, 1, 0},
}

var wedgeNeighbors = [][3]int{
	{1, 2, 3},
	{2, 0, 4},
	{0, 1, 5},
	{5, 4, 0},
	{3, 5, 1},
	{4, 3, 2},
}

var hexNeighbors = [][3]int{
	{1, 3, 4},
	{2, 0, 5},
	{3, 1, 6},
	{0, 2, 7},
	{7, 5, 0},
	{4, 6, 1},
	{5, 7, 2},
	{6, 4, 3},
}

// Edge tables, in midside-node order of the quadratic variants.
var (
	tetEdges = [][2]int{{0, 1}, {1, 2}, {2, 0}, {0, 3}, {1, 3}, {2, 3}}
	pyrEdges = [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 4}, {1, 4}, {2, 4}, {3, 4}}
	wedgeEdges = [][2]int{
		{0, 1}, {1, 2}, {2, 0},
		{3, 4}, {4, 5}, {5, 3},
		{0, 3}, {1, 4}, {2, 5},
	}
	hexEdges = [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
)

func init() {
	register(&Descriptor{
		Type: Tetra, Name: "tetrahedron",
		Corners: 4, Nodes: 4, Linear: Tetra,
		Norm: tetraNorm, CornerBasis: tetNeighbors,
	})
	register(&Descriptor{
		Type: Hexahedron, Name: "hexahedron",
		Corners: 8, Nodes: 8, Linear: Hexahedron,
		Norm: hexNorm, CornerBasis: hexNeighbors,
	})
	register(&Descriptor{
		Type: Wedge, Name: "wedge",
		Corners: 6, Nodes: 6, Linear: Wedge,
		Norm: wedgeNorm, CornerBasis: wedgeNeighbors,
	})
	register(&Descriptor{
		Type: Pyramid, Name: "pyramid",
		Corners: 5, Nodes: 5, Linear: Pyramid,
		Norm: pyramidNorm, CornerBasis: pyrNeighbors,
	})
}
