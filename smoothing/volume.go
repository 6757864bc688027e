package smoothing

import (
	"github.com/ajroetker/go-highway/hwy"

	"github.com/meshforge/cellquality/vmath"
)

// tetVol is the signed volume of the tetrahedron (a,b,c,d).
func tetVol[T hwy.Floats](a, b, c, d vmath.Vec[T]) T {
	return vmath.Triple(vmath.Sub(b, a), vmath.Sub(c, a), vmath.Sub(d, a)) / 6
}

// WedgeVolume returns the signed volume of a 6-corner wedge, positive for
// the canonical orientation (triangle 0-1-2 counterclockwise seen from the
// 3-4-5 face). Computed as a three-tetrahedron decomposition.
func WedgeVolume[T hwy.Floats](p *[6]vmath.Vec[T]) T {
	return tetVol(p[0], p[1], p[2], p[3]) +
		tetVol(p[1], p[2], p[3], p[4]) +
		tetVol(p[2], p[3], p[4], p[5])
}

// HexVolume returns the signed volume of an 8-corner hexahedron in VTK
// corner order, via the five-tetrahedron decomposition. Exact for straight-
// edged cells with planar faces; the standard closed form otherwise.
func HexVolume[T hwy.Floats](p *[8]vmath.Vec[T]) T {
	return tetVol(p[0], p[1], p[2], p[5]) +
		tetVol(p[0], p[2], p[3], p[7]) +
		tetVol(p[0], p[5], p[7], p[4]) +
		tetVol(p[2], p[7], p[5], p[6]) +
		tetVol(p[0], p[5], p[2], p[7])
}
