package frame

import (
	"log/slog"

	"github.com/cwbudde/algo-plot/dsp/window"
	"github.com/cwbudde/algo-plot/plot/autoscale"
	"github.com/cwbudde/algo-plot/plot/colormap"
	"github.com/cwbudde/algo-plot/plot/decimate"
)

// Option configures a Plot or a Pitch.
type Option func(*config)

type config struct {
	logger    *slog.Logger
	margins   Margins
	policy    decimate.Policy
	width     int
	budget    int
	smoothLen int
	smoothWin window.Type
	follow    float64
	ignoreNaN bool
	colormap  *colormap.Tabulated
	xscaler   *autoscale.AutoScaler
	yscaler   *autoscale.AutoScaler
	grid      bool
}

func defaultConfig() config {
	return config{
		margins: DefaultMargins,
		policy:  decimate.PolicyMinMax,
	}
}

// WithLogger sets the logger. A nil logger keeps records discarded.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithMargins places the plot area inside the surface.
func WithMargins(m Margins) Option {
	return func(c *config) {
		c.margins = m
	}
}

// WithDecimation reduces every plotted series with buckets of width
// samples. A width of at most one disables fixed-width decimation.
func WithDecimation(p decimate.Policy, width int) Option {
	return func(c *config) {
		c.policy = p
		c.width = width
	}
}

// WithPointBudget picks the bucket width per series so that at most about n
// points reach the frame. A fixed width from WithDecimation takes
// precedence.
func WithPointBudget(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.budget = n
		}
	}
}

// WithSmoothing smooths every plotted series with a normalized window of
// length samples before decimation. The output keeps the input length.
func WithSmoothing(length int, kind window.Type) Option {
	return func(c *config) {
		c.smoothLen = length
		c.smoothWin = kind
	}
}

// WithFollow shows only the last seconds of x data, starting at zero until
// the data has grown past that span.
func WithFollow(seconds float64) Option {
	return func(c *config) {
		if seconds > 0 {
			c.follow = seconds
		}
	}
}

// WithIgnoreNaN drops samples whose y value is NaN or infinite.
func WithIgnoreNaN() Option {
	return func(c *config) {
		c.ignoreNaN = true
	}
}

// WithColormap sets the colormap whose limits follow the y data limits.
func WithColormap(m *colormap.Tabulated) Option {
	return func(c *config) {
		c.colormap = m
	}
}

// WithScalers replaces the tick scalers. Nil arguments keep the default.
func WithScalers(x, y *autoscale.AutoScaler) Option {
	return func(c *config) {
		if x != nil {
			c.xscaler = x
		}
		if y != nil {
			c.yscaler = y
		}
	}
}

// WithGrid enables horizontal grid lines at the y ticks.
func WithGrid(on bool) Option {
	return func(c *config) {
		c.grid = on
	}
}

func newConfig(opts []Option) (config, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}
	if cfg.xscaler == nil {
		cfg.xscaler = autoscale.New()
	}
	if cfg.yscaler == nil {
		cfg.yscaler = autoscale.New()
	}
	if cfg.colormap == nil {
		m, err := colormap.NewTabulated(colormap.Config{}, colormap.DefaultBuckets)
		if err != nil {
			return config{}, err
		}
		cfg.colormap = m
	}

	return cfg, nil
}
