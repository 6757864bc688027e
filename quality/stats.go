package quality

import (
	"math"
	"sort"

	"github.com/ajroetker/go-highway/hwy"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary condenses a per-cell quality field for inspection. NaN entries
// (unsupported or degenerate cells) are counted and excluded from the
// statistics.
type Summary struct {
	Cells     int     // total cell count
	Evaluated int     // cells with a finite quality value
	NaN       int     // unsupported/indeterminate cells
	Min       float64 // worst finite quality, NaN when nothing evaluated
	Max       float64
	Mean      float64
	Median    float64
}

// Summarize computes summary statistics over a quality field of either
// precision.
func Summarize[T hwy.Floats](q []T) Summary {
	s := Summary{
		Cells:  len(q),
		Min:    math.NaN(),
		Max:    math.NaN(),
		Mean:   math.NaN(),
		Median: math.NaN(),
	}
	finite := make([]float64, 0, len(q))
	for _, v := range q {
		v64 := float64(v)
		if math.IsNaN(v64) {
			s.NaN++
			continue
		}
		if math.IsInf(v64, 0) {
			continue
		}
		finite = append(finite, v64)
	}
	s.Evaluated = len(finite)
	if len(finite) == 0 {
		return s
	}
	s.Min = floats.Min(finite)
	s.Max = floats.Max(finite)
	s.Mean = stat.Mean(finite, nil)
	sort.Float64s(finite)
	s.Median = stat.Quantile(0.5, stat.Empirical, finite, nil)
	return s
}
