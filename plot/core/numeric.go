package core

import (
	"errors"
	"math"
)

const defaultEpsilon = 1e-12

// ErrNoData is returned when an operation receives an empty series.
// Callers are expected to skip the refresh cycle for that series.
var ErrNoData = errors.New("plot: no data")

// Clamp limits value to the inclusive range [min, max].
// Swapped bounds are accepted.
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps, using an
// absolute comparison first and a relative one for large magnitudes.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
