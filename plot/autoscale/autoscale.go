package autoscale

import (
	"errors"
	"math"

	"github.com/aclements/go-moremath/scale"

	"github.com/cwbudde/algo-plot/plot/core"
)

// ErrNonPositive is returned by LogTicks for intervals touching zero or
// negative values.
var ErrNonPositive = errors.New("autoscale: log ticks need positive bounds")

const (
	// snapTol absorbs rounding when dividing a bound by the increment.
	snapTol = 1e-9
	// maxTicks bounds the tick slices built from a Scale.
	maxTicks = 1 << 16
)

// Scale describes a tick sequence start, start+Increment, ... < Stop.
type Scale struct {
	Start, Stop, Increment float64
}

// Count returns the number of ticks in the half-open range [Start, Stop).
func (s Scale) Count() int {
	if !(s.Increment > 0) || !(s.Stop > s.Start) {
		return 0
	}

	n := math.Ceil((s.Stop-s.Start)/s.Increment - snapTol)
	if !core.IsFinite(n) {
		return 0
	}
	if n > maxTicks {
		return maxTicks
	}

	return int(n)
}

// Ticks returns start, start+inc, ... strictly below Stop.
func (s Scale) Ticks() []float64 {
	n := s.Count()
	out := make([]float64, n)
	for i := range out {
		out[i] = s.Start + float64(i)*s.Increment
	}

	return out
}

// TicksInclusive is Ticks with Stop appended.
func (s Scale) TicksInclusive() []float64 {
	if !(s.Increment > 0) {
		return nil
	}

	return append(s.Ticks(), s.Stop)
}

// AutoScaler computes nice scales for data intervals. It holds only its
// configuration and may be reused across frames.
type AutoScaler struct {
	cfg config
}

// New returns an AutoScaler with 7 approximate ticks, snapping enabled and
// a no-exponent window of 10^-3 .. 10^2.
func New(opts ...Option) *AutoScaler {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return &AutoScaler{cfg: cfg}
}

// ApproxTicks returns the configured approximate tick count.
func (a *AutoScaler) ApproxTicks() int {
	return int(a.cfg.approxTicks)
}

// NiceValue rounds x to 1, 2, 5 or 10 times a power of ten, keeping its
// sign. The mantissa in [0.1, 1) snaps up to 1 from 0.75, to 0.5 from 0.35,
// to 0.2 from 0.15 and to 0.1 below.
func NiceValue(x float64) float64 {
	if x == 0 || !core.IsFinite(x) {
		return 0
	}

	sign := 1.0
	if x < 0 {
		sign, x = -1, -x
	}

	k := math.Floor(math.Log10(x)) + 1
	exp := math.Pow(10, k)
	m := x / exp

	// Log10 rounding may leave m just outside [0.1, 1).
	if m >= 1 {
		m /= 10
		exp *= 10
	} else if m < 0.1 {
		m *= 10
		exp /= 10
	}

	switch {
	case m >= 0.75:
		return sign * exp
	case m >= 0.35:
		return sign * 0.5 * exp
	case m >= 0.15:
		return sign * 0.2 * exp
	default:
		return sign * 0.1 * exp
	}
}

// MakeScale returns the scale for the data interval [low, high]. Reversed
// bounds are swapped. A zero-width interval is widened by a tenth of its
// magnitude (or by one around zero) so the increment never degenerates.
// A NaN or infinite bound is replaced by the other one, and two of them by
// zero, so such input scales like a zero-width interval.
func (a *AutoScaler) MakeScale(low, high float64) Scale {
	low, high = finiteBounds(low, high)
	iv := core.NewInterval(low, high)

	mode := a.cfg.mode
	if mode == ModeAuto {
		mode = guessMode(iv.Low, iv.High)
	}

	mi, ma := scaledBounds(mode, iv)

	if mode != ModeOff && a.cfg.space > 0 {
		pad := a.cfg.space * (ma - mi)
		if mi != 0 || mode == ModeMinMax {
			mi -= pad
		}
		if ma != 0 || mode == ModeMinMax {
			ma += pad
		}
	}

	if mi == ma {
		delta := 0.1 * math.Abs(mi)
		if delta == 0 {
			delta = 1
		}
		mi -= delta
		ma += delta
	}

	inc := a.cfg.increment
	if inc <= 0 {
		inc = NiceValue((ma - mi) / a.cfg.approxTicks)
	}
	if inc <= 0 || !core.IsFinite(inc) {
		inc = 1
	}

	if a.cfg.snap && mode != ModeOff {
		mi = inc * math.Floor(mi/inc+snapTol)
		ma = inc * math.Ceil(ma/inc-snapTol)
	}

	return Scale{Start: mi, Stop: ma, Increment: inc}
}

func finiteBounds(low, high float64) (float64, float64) {
	lok, hok := core.IsFinite(low), core.IsFinite(high)
	switch {
	case lok && hok:
		return low, high
	case lok:
		return low, low
	case hok:
		return high, high
	default:
		return 0, 0
	}
}

func scaledBounds(mode Mode, iv core.Interval) (mi, ma float64) {
	switch mode {
	case ModeZeroMax:
		ma = iv.High
		if ma <= 0 {
			ma = 1
		}
		return 0, ma
	case ModeMinZero:
		mi = iv.Low
		if mi >= 0 {
			mi = -1
		}
		return mi, 0
	case ModeSymmetric:
		m := math.Max(math.Abs(iv.Low), math.Abs(iv.High))
		return -m, m
	default:
		return iv.Low, iv.High
	}
}

// guessMode anchors mostly-positive data at zero, mostly-negative data at
// zero, and nearly balanced data symmetrically.
func guessMode(lo, hi float64) Mode {
	switch {
	case lo >= 0:
		if lo < hi/2 {
			return ModeZeroMax
		}
		return ModeMinMax
	case hi <= 0:
		if hi > lo/2 {
			return ModeMinZero
		}
		return ModeMinMax
	default:
		balance := math.Abs((math.Abs(hi) - math.Abs(lo)) / (math.Abs(hi) + math.Abs(lo)))
		if balance < 0.1 {
			return ModeSymmetric
		}
		return ModeMinMax
	}
}

// LogTicks returns decade-based major and minor ticks for a positive
// interval, with at most max major ticks. A non-positive max uses the
// configured approximate tick count.
func (a *AutoScaler) LogTicks(low, high float64, max int) (major, minor []float64, err error) {
	iv := core.NewInterval(low, high)
	if iv.Low <= 0 {
		return nil, nil, ErrNonPositive
	}

	s, err := scale.NewLog(iv.Low, iv.High, 10)
	if err != nil {
		return nil, nil, err
	}

	if max <= 0 {
		max = a.ApproxTicks()
	}

	major, minor = s.Ticks(scale.TickOptions{Max: max})

	return major, minor, nil
}
