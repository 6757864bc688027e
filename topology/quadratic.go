package topology

import "math"

// The quadratic stencils are the shape-function partial derivatives of each
// topology evaluated at every sample node's natural coordinates. They are
// assembled once here, at load time, by differentiating the standard
// quadratic bases analytically; the evaluators never touch shape functions
// at runtime. A corner stencil reduces to the familiar edge-tangent form
// 4*midside - 3*corner - otherEnd, a midside stencil couples the edge
// endpoints with the neighboring midside nodes.

const pruneTol = 1e-12

// buildStencils evaluates deriv at each node coordinate and collects the
// nonzero coefficients per Jacobian direction.
func buildStencils(coords [][3]float64, deriv func(r, s, t float64) [][3]float64) []Stencil {
	out := make([]Stencil, len(coords))
	for n, c := range coords {
		d := deriv(c[0], c[1], c[2])
		for k := 0; k < 3; k++ {
			var terms []Term
			for j := range d {
				if w := d[j][k]; math.Abs(w) > pruneTol {
					terms = append(terms, Term{Node: j, Weight: w})
				}
			}
			out[n][k] = terms
		}
	}
	return out
}

// 10-node tetrahedron: barycentric L = (1-r-s-t, r, s, t), corners
// N_i = L_i(2L_i-1), midsides N_ij = 4 L_i L_j.

var tet10Coords = [][3]float64{
	{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1},
	{0.5, 0, 0}, {0.5, 0.5, 0}, {0, 0.5, 0},
	{0, 0, 0.5}, {0.5, 0, 0.5}, {0, 0.5, 0.5},
}

var tetDL = [4][3]float64{{-1, -1, -1}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

func tet10Deriv(r, s, t float64) [][3]float64 {
	L := [4]float64{1 - r - s - t, r, s, t}
	d := make([][3]float64, 10)
	for i := 0; i < 4; i++ {
		for k := 0; k < 3; k++ {
			d[i][k] = tetDL[i][k] * (4*L[i] - 1)
		}
	}
	for e, ed := range tetEdges {
		a, b := ed[0], ed[1]
		for k := 0; k < 3; k++ {
			d[4+e][k] = 4 * (tetDL[a][k]*L[b] + L[a]*tetDL[b][k])
		}
	}
	return d
}

// 20-node serendipity hexahedron on [-1,1]^3. Corner
// N_i = (1+x xi)(1+y et)(1+z ze)(x xi + y et + z ze - 2)/8, midsides
// replace the quadratic coordinate factor with (1-c^2)/4.

var hexSigns = [8][3]float64{
	{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
	{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
}

func hex20Coords() [][3]float64 {
	c := make([][3]float64, 20)
	for i, s := range hexSigns {
		c[i] = s
	}
	for e, ed := range hexEdges {
		a, b := hexSigns[ed[0]], hexSigns[ed[1]]
		c[8+e] = [3]float64{(a[0] + b[0]) / 2, (a[1] + b[1]) / 2, (a[2] + b[2]) / 2}
	}
	return c
}

func hex20Deriv(x, y, z float64) [][3]float64 {
	d := make([][3]float64, 20)
	for i, sg := range hexSigns {
		xi, et, ze := sg[0], sg[1], sg[2]
		sum := x*xi + y*et + z*ze
		d[i][0] = xi / 8 * (1 + y*et) * (1 + z*ze) * (sum + x*xi - 1)
		d[i][1] = et / 8 * (1 + x*xi) * (1 + z*ze) * (sum + y*et - 1)
		d[i][2] = ze / 8 * (1 + x*xi) * (1 + y*et) * (sum + z*ze - 1)
	}
	coords := hex20Coords()
	for e := 0; e < 12; e++ {
		n := 8 + e
		xi, et, ze := coords[n][0], coords[n][1], coords[n][2]
		switch {
		case xi == 0:
			d[n][0] = -x / 2 * (1 + y*et) * (1 + z*ze)
			d[n][1] = et / 4 * (1 - x*x) * (1 + z*ze)
			d[n][2] = ze / 4 * (1 - x*x) * (1 + y*et)
		case et == 0:
			d[n][0] = xi / 4 * (1 - y*y) * (1 + z*ze)
			d[n][1] = -y / 2 * (1 + x*xi) * (1 + z*ze)
			d[n][2] = ze / 4 * (1 - y*y) * (1 + x*xi)
		default: // ze == 0
			d[n][0] = xi / 4 * (1 - z*z) * (1 + y*et)
			d[n][1] = et / 4 * (1 - z*z) * (1 + x*xi)
			d[n][2] = -z / 2 * (1 + x*xi) * (1 + y*et)
		}
	}
	return d
}

// 15-node wedge: triangle barycentric L = (1-r-s, r, s) with zeta in [-1,1].
// Corners N = L((2L-1)(1 -+ zeta) - (1-zeta^2))/2, triangle-edge midsides
// N = 2 L_i L_j (1 -+ zeta), vertical midsides N = L (1-zeta^2).

var wedge15Coords = [][3]float64{
	{0, 0, -1}, {1, 0, -1}, {0, 1, -1},
	{0, 0, 1}, {1, 0, 1}, {0, 1, 1},
	{0.5, 0, -1}, {0.5, 0.5, -1}, {0, 0.5, -1},
	{0.5, 0, 1}, {0.5, 0.5, 1}, {0, 0.5, 1},
	{0, 0, 0}, {1, 0, 0}, {0, 1, 0},
}

var wedgeDL = [3][2]float64{{-1, -1}, {1, 0}, {0, 1}}

func wedge15Deriv(r, s, z float64) [][3]float64 {
	L := [3]float64{1 - r - s, r, s}
	d := make([][3]float64, 15)
	for i := 0; i < 3; i++ {
		bot, top := i, i+3
		for k := 0; k < 2; k++ {
			d[bot][k] = wedgeDL[i][k] / 2 * ((4*L[i]-1)*(1-z) - (1 - z*z))
			d[top][k] = wedgeDL[i][k] / 2 * ((4*L[i]-1)*(1+z) - (1 - z*z))
		}
		d[bot][2] = -L[i]*(2*L[i]-1)/2 + L[i]*z
		d[top][2] = L[i]*(2*L[i]-1)/2 + L[i]*z
	}
	for e := 0; e < 3; e++ {
		a, b := wedgeEdges[e][0], wedgeEdges[e][1]
		at, bt := wedgeEdges[3+e][0]-3, wedgeEdges[3+e][1]-3
		for k := 0; k < 2; k++ {
			d[6+e][k] = 2 * (1 - z) * (wedgeDL[a][k]*L[b] + L[a]*wedgeDL[b][k])
			d[9+e][k] = 2 * (1 + z) * (wedgeDL[at][k]*L[bt] + L[at]*wedgeDL[bt][k])
		}
		d[6+e][2] = -2 * L[a] * L[b]
		d[9+e][2] = 2 * L[at] * L[bt]
	}
	for i := 0; i < 3; i++ {
		for k := 0; k < 2; k++ {
			d[12+i][k] = wedgeDL[i][k] * (1 - z*z)
		}
		d[12+i][2] = -2 * L[i] * z
	}
	return d
}

// 13-node pyramid. The conforming quadratic pyramid basis is rational and
// singular at the apex, so its stencils are assembled from edge tangents
// instead: the quadratic tangent of edge (c,o) at c is 4m - 3c - o, the
// tangent at a midside is o - c, and transverse directions at midsides
// average the tangents at the edge's two endpoints. For straight-sided
// cells every stencil reduces exactly to the linear edge vectors.

var pyrNext = [4]int{1, 2, 3, 0}
var pyrPrev = [4]int{3, 0, 1, 2}

func pyrMid(a, b int) int {
	for e, ed := range pyrEdges {
		if (ed[0] == a && ed[1] == b) || (ed[0] == b && ed[1] == a) {
			return 5 + e
		}
	}
	panic("pyramid edge table")
}

// pyrTangent is the quadratic edge tangent at corner c pointing toward o.
func pyrTangent(c, o int) []Term {
	return []Term{{pyrMid(c, o), 4}, {c, -3}, {o, -1}}
}

func pyrAverage(a, b []Term) []Term {
	out := make([]Term, 0, len(a)+len(b))
	for _, t := range a {
		out = append(out, Term{t.Node, t.Weight / 2})
	}
	for _, t := range b {
		out = append(out, Term{t.Node, t.Weight / 2})
	}
	return out
}

func pyr13Stencils() []Stencil {
	out := make([]Stencil, 13)
	for i := 0; i < 4; i++ {
		out[i] = Stencil{
			pyrTangent(i, pyrNext[i]),
			pyrTangent(i, pyrPrev[i]),
			pyrTangent(i, 4),
		}
	}
	// Apex: three of the four downward edge tangents, ordered like the
	// linear apex sample.
	out[4] = Stencil{pyrTangent(4, 2), pyrTangent(4, 1), pyrTangent(4, 0)}
	for i := 0; i < 4; i++ {
		j := pyrNext[i]
		out[pyrMid(i, j)] = Stencil{
			{{j, 1}, {i, -1}},
			pyrAverage(pyrTangent(i, pyrPrev[i]), pyrTangent(j, pyrNext[j])),
			pyrAverage(pyrTangent(i, 4), pyrTangent(j, 4)),
		}
		out[pyrMid(i, 4)] = Stencil{
			pyrTangent(i, pyrNext[i]),
			pyrTangent(i, pyrPrev[i]),
			{{4, 1}, {i, -1}},
		}
	}
	return out
}

func init() {
	register(&Descriptor{
		Type: QuadraticTetra, Name: "quadratic tetrahedron",
		Corners: 4, Nodes: 10, Quadratic: true, Linear: Tetra,
		Norm: tetraNorm, CornerBasis: tetNeighbors, Edges: tetEdges,
		Samples: buildStencils(tet10Coords, tet10Deriv),
	})
	register(&Descriptor{
		Type: QuadraticHexahedron, Name: "quadratic hexahedron",
		Corners: 8, Nodes: 20, Quadratic: true, Linear: Hexahedron,
		Norm: hexNorm, CornerBasis: hexNeighbors, Edges: hexEdges,
		Samples: buildStencils(hex20Coords(), hex20Deriv),
	})
	register(&Descriptor{
		Type: QuadraticWedge, Name: "quadratic wedge",
		Corners: 6, Nodes: 15, Quadratic: true, Linear: Wedge,
		Norm: wedgeNorm, CornerBasis: wedgeNeighbors, Edges: wedgeEdges,
		Samples: buildStencils(wedge15Coords, wedge15Deriv),
	})
	register(&Descriptor{
		Type: QuadraticPyramid, Name: "quadratic pyramid",
		Corners: 5, Nodes: 13, Quadratic: true, Linear: Pyramid,
		Norm: pyramidNorm, CornerBasis: pyrNeighbors, Edges: pyrEdges,
		Samples: pyr13Stencils(),
	})
}
