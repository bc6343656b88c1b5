// Package projection maps values linearly from an input interval onto an
// output interval, typically data space onto a bounded pixel surface.
//
// The input interval is normalized (reversed pairs are swapped). The output
// interval keeps its orientation so that screen axes growing downwards can
// be expressed as SetOutRange(bottom, top). A zero-width input interval is
// not an error: every value collapses onto the low end of the output.
package projection

import (
	"math"

	"github.com/cwbudde/algo-plot/plot/core"
)

// Projection is a linear map between two intervals. The zero value is not
// usable; use New.
type Projection struct {
	in      core.Interval
	outLow  float64
	outHigh float64
}

// New returns a projection mapping [0, 1] onto [0, 1].
func New() *Projection {
	return &Projection{
		in:      core.Interval{Low: 0, High: 1},
		outLow:  0,
		outHigh: 1,
	}
}

// SetInRange sets the input interval. Reversed bounds are swapped.
func (p *Projection) SetInRange(low, high float64) {
	p.in = core.NewInterval(low, high)
}

// SetOutRange sets the output interval. low is where the input low lands,
// so low > high flips the direction of the map.
func (p *Projection) SetOutRange(low, high float64) {
	p.outLow, p.outHigh = low, high
}

// InRange returns the input interval bounds.
func (p *Projection) InRange() (low, high float64) {
	return p.in.Low, p.in.High
}

// OutRange returns the output interval bounds in the order they were set.
func (p *Projection) OutRange() (low, high float64) {
	return p.outLow, p.outHigh
}

// Map applies the linear transform to x.
//
// Map(inLow) returns outLow and Map(inHigh) returns outHigh exactly.
func (p *Projection) Map(x float64) float64 {
	w := p.in.Width()
	if w == 0 {
		return p.outLow
	}

	t := (x - p.in.Low) / w

	return p.outLow*(1-t) + p.outHigh*t
}

// Clipped clamps x to the input interval, maps it, and clamps the result
// to the output interval. The result never leaves the output interval.
func (p *Projection) Clipped(x float64) float64 {
	if math.IsNaN(x) {
		return p.outLow
	}

	y := p.Map(p.in.Clamp(x))

	return core.Clamp(y, p.outLow, p.outHigh)
}

// Unmap is the inverse of Map. A zero-width output interval maps every
// value onto the low end of the input.
func (p *Projection) Unmap(y float64) float64 {
	d := p.outHigh - p.outLow
	if d == 0 {
		return p.in.Low
	}

	t := (y - p.outLow) / d

	return p.in.Low*(1-t) + p.in.High*t
}
