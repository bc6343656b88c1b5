package core

import (
	"math"

	"github.com/aclements/go-moremath/stats"
)

// Interval is a closed numeric range with Low <= High.
type Interval struct {
	Low, High float64
}

// NewInterval returns the interval spanned by a and b. Reversed pairs are
// swapped rather than rejected: they show up naturally while a live view
// auto-fits before its first data arrives.
func NewInterval(a, b float64) Interval {
	if a > b {
		a, b = b, a
	}

	return Interval{Low: a, High: b}
}

// Width returns High - Low.
func (iv Interval) Width() float64 {
	return iv.High - iv.Low
}

// IsDegenerate reports whether the interval has zero width.
func (iv Interval) IsDegenerate() bool {
	return iv.High == iv.Low
}

// Contains reports whether x lies inside the closed interval.
func (iv Interval) Contains(x float64) bool {
	return x >= iv.Low && x <= iv.High
}

// Clamp limits x to the interval.
func (iv Interval) Clamp(x float64) float64 {
	return Clamp(x, iv.Low, iv.High)
}

// Union returns the smallest interval containing both iv and other.
func (iv Interval) Union(other Interval) Interval {
	return Interval{
		Low:  math.Min(iv.Low, other.Low),
		High: math.Max(iv.High, other.High),
	}
}

// Bounds returns the interval spanned by the finite values in xs.
// It returns ErrNoData if xs holds no finite value.
func Bounds(xs []float64) (Interval, error) {
	if len(xs) == 0 {
		return Interval{}, ErrNoData
	}

	for _, x := range xs {
		if !IsFinite(x) {
			return boundsFinite(xs)
		}
	}

	lo, hi := stats.Bounds(xs)

	return Interval{Low: lo, High: hi}, nil
}

// boundsFinite is the slow path of Bounds for inputs carrying NaN or Inf.
func boundsFinite(xs []float64) (Interval, error) {
	finite := make([]float64, 0, len(xs))
	for _, x := range xs {
		if IsFinite(x) {
			finite = append(finite, x)
		}
	}

	if len(finite) == 0 {
		return Interval{}, ErrNoData
	}

	lo, hi := stats.Bounds(finite)

	return Interval{Low: lo, High: hi}, nil
}
