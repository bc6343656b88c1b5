package autoscale

// Mode selects how the data interval is turned into the scaled interval
// before the increment is chosen.
type Mode int

const (
	// ModeMinMax scales from the data minimum to the data maximum.
	ModeMinMax Mode = iota
	// ModeAuto picks one of the other modes from the shape of the data.
	ModeAuto
	// ModeZeroMax scales from zero to the data maximum.
	ModeZeroMax
	// ModeMinZero scales from the data minimum to zero.
	ModeMinZero
	// ModeSymmetric scales symmetrically around zero.
	ModeSymmetric
	// ModeOff keeps the data interval as is and disables snapping.
	ModeOff
)

var modeNames = map[Mode]string{
	ModeMinMax:    "min-max",
	ModeAuto:      "auto",
	ModeZeroMax:   "0-max",
	ModeMinZero:   "min-0",
	ModeSymmetric: "symmetric",
	ModeOff:       "off",
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return "unknown"
}

// Option configures an AutoScaler.
type Option func(*config)

type config struct {
	approxTicks float64
	snap        bool
	noExpLow    int
	noExpHigh   int
	expFactor   int
	mode        Mode
	space       float64
	increment   float64
}

func defaultConfig() config {
	return config{
		approxTicks: 7,
		snap:        true,
		noExpLow:    -3,
		noExpHigh:   2,
		expFactor:   3,
		mode:        ModeMinMax,
	}
}

// WithApproxTicks sets the approximate number of ticks per axis.
func WithApproxTicks(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.approxTicks = float64(n)
		}
	}
}

// WithSnap controls whether start and stop are snapped to multiples of the
// increment.
func WithSnap(snap bool) Option {
	return func(c *config) {
		c.snap = snap
	}
}

// WithNoExpInterval sets the decimal exponent window [lo, hi] inside which
// labels are written without an exponent.
func WithNoExpInterval(lo, hi int) Option {
	return func(c *config) {
		if lo > hi {
			lo, hi = hi, lo
		}
		c.noExpLow, c.noExpHigh = lo, hi
	}
}

// WithExpFactor sets the step between label exponents outside the
// no-exponent window.
func WithExpFactor(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.expFactor = n
		}
	}
}

// WithMode sets the scaling mode.
func WithMode(m Mode) Option {
	return func(c *config) {
		if _, ok := modeNames[m]; ok {
			c.mode = m
		}
	}
}

// WithSpace pads the scaled interval by the given fraction of its width on
// each non-zero side.
func WithSpace(f float64) Option {
	return func(c *config) {
		if f >= 0 {
			c.space = f
		}
	}
}

// WithIncrement forces a fixed tick increment. Non-positive values restore
// automatic selection.
func WithIncrement(inc float64) Option {
	return func(c *config) {
		if inc > 0 {
			c.increment = inc
		} else {
			c.increment = 0
		}
	}
}
