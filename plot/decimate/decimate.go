package decimate

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-plot/plot/core"
)

// Policy selects the per-bucket aggregation.
type Policy int

const (
	// PolicyMean keeps the bucket average.
	PolicyMean Policy = iota
	// PolicyMinMax keeps the bucket extrema.
	PolicyMinMax
)

func (p Policy) String() string {
	switch p {
	case PolicyMean:
		return "mean"
	case PolicyMinMax:
		return "minmax"
	default:
		return "unknown"
	}
}

// ParsePolicy converts a policy name. "min-max" and "minmax" are accepted
// for PolicyMinMax.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "mean", "avg", "average":
		return PolicyMean, nil
	case "minmax", "min-max", "envelope":
		return PolicyMinMax, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}

// Decimate reduces s with buckets of width samples. A width of at most one,
// or at least len(s), returns an unchanged copy.
func Decimate(s Series, width int, p Policy) (Series, error) {
	if len(s) == 0 {
		return nil, core.ErrNoData
	}
	if width <= 1 || width >= len(s) {
		return s.Clone(), nil
	}

	switch p {
	case PolicyMean:
		return meanSeries(s, width), nil
	case PolicyMinMax:
		return minMaxSeries(s, width), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownPolicy, int(p))
	}
}

// Buckets returns the number of buckets of width samples needed for n
// samples.
func Buckets(n, width int) int {
	if n <= 0 {
		return 0
	}
	if width <= 1 {
		return n
	}

	return (n + width - 1) / width
}

func meanSeries(s Series, width int) Series {
	xs, ys := s.XY()
	mx := meanBuckets(xs, width)
	my := meanBuckets(ys, width)

	out := make(Series, len(my))
	for i := range out {
		out[i] = Point{X: mx[i], Y: my[i]}
	}

	return out
}

func minMaxSeries(s Series, width int) Series {
	out := make(Series, 0, 2*Buckets(len(s), width))

	for start := 0; start < len(s); start += width {
		end := min(start+width, len(s))
		lo, hi := extremaIndex(s[start:end], func(p Point) float64 { return p.Y })
		lo += start
		hi += start

		switch {
		case lo == hi:
			out = append(out, s[lo])
		case lo < hi:
			out = append(out, s[lo], s[hi])
		default:
			out = append(out, s[hi], s[lo])
		}
	}

	return out
}

// Mean averages ys in buckets of width samples.
func Mean(ys []float64, width int) ([]float64, error) {
	if len(ys) == 0 {
		return nil, core.ErrNoData
	}
	if width <= 1 || width >= len(ys) {
		return clone(ys), nil
	}

	return meanBuckets(ys, width), nil
}

// MinMax keeps the minimum and maximum of every bucket of width samples,
// in the order they occur. A bucket whose extrema are the same sample
// contributes one value.
func MinMax(ys []float64, width int) ([]float64, error) {
	if len(ys) == 0 {
		return nil, core.ErrNoData
	}
	if width <= 1 || width >= len(ys) {
		return clone(ys), nil
	}

	out := make([]float64, 0, 2*Buckets(len(ys), width))
	for start := 0; start < len(ys); start += width {
		end := min(start+width, len(ys))
		lo, hi := extremaIndex(ys[start:end], func(v float64) float64 { return v })

		switch {
		case lo == hi:
			out = append(out, ys[start+lo])
		case lo < hi:
			out = append(out, ys[start+lo], ys[start+hi])
		default:
			out = append(out, ys[start+hi], ys[start+lo])
		}
	}

	return out, nil
}

// Envelope returns the per-bucket minimum and maximum of ys, one entry per
// bucket. Unlike MinMax the two sequences stay aligned with Stride.
func Envelope(ys []float64, width int) (mins, maxs []float64, err error) {
	if len(ys) == 0 {
		return nil, nil, core.ErrNoData
	}
	if width < 1 {
		width = 1
	}

	n := Buckets(len(ys), width)
	mins = make([]float64, n)
	maxs = make([]float64, n)

	for b := range n {
		start := b * width
		end := min(start+width, len(ys))
		lo, hi := extremaIndex(ys[start:end], func(v float64) float64 { return v })
		mins[b] = ys[start+lo]
		maxs[b] = ys[start+hi]
	}

	return mins, maxs, nil
}

// BucketWidth returns the smallest bucket width that brings n samples
// within budget points. The result is at least one.
func BucketWidth(n, budget int) int {
	if budget <= 0 || n <= budget {
		return 1
	}

	return (n + budget - 1) / budget
}

// Stride returns every width-th element of xs, starting with the first.
func Stride(xs []float64, width int) []float64 {
	if width <= 1 {
		return clone(xs)
	}

	out := make([]float64, 0, Buckets(len(xs), width))
	for i := 0; i < len(xs); i += width {
		out = append(out, xs[i])
	}

	return out
}

func meanBuckets(vs []float64, width int) []float64 {
	out := make([]float64, Buckets(len(vs), width))
	for b := range out {
		start := b * width
		end := min(start+width, len(vs))
		out[b] = vecmath.Sum(vs[start:end]) / float64(end-start)
	}

	return out
}

// extremaIndex returns the indices of the first minimum and the first
// maximum of bucket. NaN values are skipped unless the bucket holds nothing
// else.
func extremaIndex[T any](bucket []T, value func(T) float64) (lo, hi int) {
	lo, hi = -1, -1
	for i, p := range bucket {
		v := value(p)
		if math.IsNaN(v) {
			continue
		}
		if lo < 0 || v < value(bucket[lo]) {
			lo = i
		}
		if hi < 0 || v > value(bucket[hi]) {
			hi = i
		}
	}

	if lo < 0 {
		return 0, 0
	}

	return lo, hi
}

func clone(vs []float64) []float64 {
	out := make([]float64, len(vs))
	copy(out, vs)

	return out
}
