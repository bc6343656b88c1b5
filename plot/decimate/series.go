package decimate

import (
	"fmt"

	"github.com/cwbudde/algo-plot/plot/core"
)

// Point is one sample of a series.
type Point struct {
	X, Y float64
}

// Series is an ordered sequence of points.
type Series []Point

// NewSeries zips xs and ys into a Series. A nil xs uses the sample index as
// the x coordinate.
func NewSeries(xs, ys []float64) (Series, error) {
	if len(ys) == 0 {
		return nil, core.ErrNoData
	}
	if xs != nil && len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(xs), len(ys))
	}

	s := make(Series, len(ys))
	for i, y := range ys {
		x := float64(i)
		if xs != nil {
			x = xs[i]
		}
		s[i] = Point{X: x, Y: y}
	}

	return s, nil
}

// XY splits the series into coordinate slices.
func (s Series) XY() (xs, ys []float64) {
	xs = make([]float64, len(s))
	ys = make([]float64, len(s))
	for i, p := range s {
		xs[i], ys[i] = p.X, p.Y
	}

	return xs, ys
}

// Clone returns a copy of s.
func (s Series) Clone() Series {
	if s == nil {
		return nil
	}

	out := make(Series, len(s))
	copy(out, s)

	return out
}
