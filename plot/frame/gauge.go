package frame

import (
	"github.com/cwbudde/algo-plot/plot/autoscale"
	"github.com/cwbudde/algo-plot/plot/core"
	"github.com/cwbudde/algo-plot/plot/projection"
)

// Default gauge range.
const (
	DefaultGaugeMin = 0
	DefaultGaugeMax = 1500
)

// GaugeTick is a labelled tick on the gauge arc. Angle is in degrees,
// counter-clockwise from the positive x axis: the range minimum sits at
// 180 and the maximum at 0.
type GaugeTick struct {
	Value float64
	Angle float64
	Label string
}

// Gauge maps a single value onto a half-circle arc.
type Gauge struct {
	rng    core.Interval
	proj   *projection.Projection
	scaler *autoscale.AutoScaler
	value  float64
}

// NewGauge returns a gauge over [lo, hi]. Equal bounds select the
// default range.
func NewGauge(lo, hi float64) *Gauge {
	if lo == hi {
		lo, hi = DefaultGaugeMin, DefaultGaugeMax
	}

	g := &Gauge{
		rng:    core.NewInterval(lo, hi),
		proj:   projection.New(),
		scaler: autoscale.New(),
	}
	g.proj.SetInRange(g.rng.Low, g.rng.High)
	g.proj.SetOutRange(0, 180)

	return g
}

// Range returns the gauge range.
func (g *Gauge) Range() core.Interval { return g.rng }

// SetValue sets the displayed value.
func (g *Gauge) SetValue(v float64) { g.value = v }

// Value returns the displayed value.
func (g *Gauge) Value() float64 { return g.value }

// Arc returns the start angle and the sweep of the value arc in degrees.
// The arc starts at 180 and sweeps clockwise, so span lies in [-180, 0].
// Values outside the range are clipped.
func (g *Gauge) Arc() (start, span float64) {
	return 180, -g.proj.Clipped(g.value)
}

// Ticks returns the nice ticks inside the gauge range.
func (g *Gauge) Ticks() []GaugeTick {
	s := g.scaler.MakeScale(g.rng.Low, g.rng.High)
	ticks := g.scaler.Label(s, s.Ticks())

	out := make([]GaugeTick, 0, len(ticks))
	for _, t := range ticks {
		if !g.rng.Contains(t.Value) {
			continue
		}
		out = append(out, GaugeTick{Value: t.Value, Angle: 180 - g.proj.Map(t.Value), Label: t.Label})
	}

	return out
}
