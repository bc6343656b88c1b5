package autoscale

import (
	"math"
	"strconv"
)

// Tick is a tick position in data space with its label.
type Tick struct {
	Value float64
	Label string
}

// Exponent returns the exponent used to label values of magnitude x:
// 0 inside the no-exponent window, otherwise log10|x| rounded down to a
// multiple of the exponent factor.
func (a *AutoScaler) Exponent(x float64) int {
	x = math.Abs(x)
	if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}

	if x >= math.Pow(10, float64(a.cfg.noExpLow)) && x <= math.Pow(10, float64(a.cfg.noExpHigh)) {
		return 0
	}

	f := float64(a.cfg.expFactor)

	return int(math.Floor(math.Log10(x)/f+snapTol) * f)
}

// Ticks returns the labelled ticks of MakeScale(low, high).
func (a *AutoScaler) Ticks(low, high float64) []Tick {
	s := a.MakeScale(low, high)
	return a.Label(s, s.Ticks())
}

// Label formats values with the exponent and precision implied by the
// increment of s.
func (a *AutoScaler) Label(s Scale, values []float64) []Tick {
	exp := a.Exponent(math.Max(math.Abs(s.Start), math.Abs(s.Stop)))
	unit := math.Pow(10, float64(exp))
	decimals := labelDecimals(s.Increment / unit)

	out := make([]Tick, len(values))
	for i, v := range values {
		out[i] = Tick{Value: v, Label: formatLabel(v/unit, decimals, exp, s.Increment/unit)}
	}

	return out
}

func labelDecimals(inc float64) int {
	if !(inc > 0) {
		return 0
	}

	d := -int(math.Floor(math.Log10(inc) + snapTol))
	if d < 0 {
		return 0
	}

	return d
}

func formatLabel(v float64, decimals, exp int, inc float64) string {
	// Ticks computed as start+i*inc may land a hair away from zero.
	if math.Abs(v) < inc*snapTol {
		v = 0
	}

	s := strconv.FormatFloat(v, 'f', decimals, 64)
	if exp != 0 {
		s += "e" + strconv.Itoa(exp)
	}

	return s
}
