package frame

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/aclements/go-moremath/vec"

	"github.com/cwbudde/algo-plot/dsp/smooth"
	"github.com/cwbudde/algo-plot/plot/core"
	"github.com/cwbudde/algo-plot/plot/decimate"
)

// AxisTick is a labelled tick in data and pixel space.
type AxisTick struct {
	Value float64
	Pixel float64
	Label string
}

// Frame is the drawing data of one refresh.
type Frame struct {
	// Points are the visible samples in pixel space, in data order.
	Points []Point
	// Segments join the two tracks of a Pitch overlay.
	Segments  []Segment
	XTicks    []AxisTick
	YTicks    []AxisTick
	GridLines []Line
	// XRange and YRange are the visible data ranges.
	XRange core.Interval
	YRange core.Interval
	// Fill marks Points as a closed polygon.
	Fill bool
}

// Plot turns series into frames. It is not safe for concurrent use.
type Plot struct {
	view

	cfg      config
	log      *slog.Logger
	smoother *smooth.Smoother
	xs, ys   []float64
	fill     bool
}

// New returns a Plot configured by opts.
func New(opts ...Option) (*Plot, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	p := &Plot{
		view: newView(cfg.follow, cfg.colormap),
		cfg:  cfg,
		log:  cfg.logger,
	}

	if cfg.smoothLen >= smooth.MinWindowLen {
		s, err := smooth.New(cfg.smoothLen, cfg.smoothWin, smooth.WithTrim(smooth.TrimSame))
		if err != nil {
			return nil, fmt.Errorf("frame: %w", err)
		}
		p.smoother = s
	}

	return p, nil
}

// Plot replaces the series. A nil xs uses the sample index. The series is
// smoothed and decimated as configured before the limits are updated.
func (p *Plot) Plot(xs, ys []float64) error {
	if len(ys) == 0 {
		p.log.Warn("plot: empty series")
		return core.ErrNoData
	}

	xs, err := indexed(xs, len(ys))
	if err != nil {
		return err
	}

	if p.cfg.ignoreNaN {
		xs, ys = dropInvalid(xs, ys)
		if len(ys) == 0 {
			p.log.Warn("plot: no finite samples")
			return core.ErrNoData
		}
	}

	if p.smoother != nil {
		if ys, err = p.smoother.Process(ys); err != nil {
			return err
		}
	}

	n := len(ys)
	xs, ys, err = p.reduce(xs, ys)
	if err != nil {
		return err
	}

	p.log.Debug("plot: series set", "in", n, "out", len(ys))

	return p.setSeries(xs, ys, false)
}

// PlotLog plots the natural logarithm of ys. Samples with non-positive y
// are dropped. The y axis carries decade ticks labelled in linear units.
func (p *Plot) PlotLog(xs, ys []float64) error {
	xs, err := indexed(xs, len(ys))
	if err != nil {
		return err
	}

	lx := make([]float64, 0, len(ys))
	ly := make([]float64, 0, len(ys))
	for i, y := range ys {
		if y > 0 {
			lx = append(lx, xs[i])
			ly = append(ly, y)
		}
	}

	if len(ly) == 0 {
		p.log.Warn("plot: no positive samples for log plot", "n", len(ys))
		return core.ErrNoData
	}

	if err := p.Plot(lx, vec.Map(math.Log, ly)); err != nil {
		return err
	}
	p.logY = true

	return nil
}

// FillBetween replaces the series with the closed polygon between y1 and
// y2: y1 forwards, then y2 backwards. The polygon is neither smoothed nor
// decimated.
func (p *Plot) FillBetween(xs, y1, y2 []float64) error {
	n := len(y1)
	if n == 0 {
		p.log.Warn("plot: empty fill")
		return core.ErrNoData
	}
	if len(y2) != n {
		return fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(y2), n)
	}

	xs, err := indexed(xs, n)
	if err != nil {
		return err
	}

	px := make([]float64, 2*n)
	py := make([]float64, 2*n)
	copy(px, xs)
	copy(py, y1)
	for i := range n {
		px[n+i] = xs[n-1-i]
		py[n+i] = y2[n-1-i]
	}

	return p.setSeries(px, py, true)
}

// Data returns copies of the series as stored after smoothing and
// decimation.
func (p *Plot) Data() (xs, ys []float64) {
	return append([]float64(nil), p.xs...), append([]float64(nil), p.ys...)
}

// Render projects the visible part of the series onto r.
func (p *Plot) Render(r Rect) (Frame, error) {
	if r.Empty() {
		return Frame{}, ErrEmptySurface
	}
	if !p.hasData {
		p.log.Warn("plot: render without data")
		return Frame{}, core.ErrNoData
	}

	xr, yr := p.visible()
	xp, yp := axes(r, p.cfg.margins, xr.Low, xr.High, yr.Low, yr.High)

	f := Frame{XRange: xr, YRange: yr, Fill: p.fill}
	f.Points = make([]Point, 0, len(p.xs))
	for i, x := range p.xs {
		y := p.ys[i]
		if !xr.Contains(x) || math.IsNaN(y) {
			continue
		}
		f.Points = append(f.Points, Point{X: xp.Map(x), Y: yp.Clipped(y)})
	}

	p.decorate(&f, r, &p.cfg, xp, yp)

	p.log.Debug("plot: frame rendered",
		"points", len(f.Points), "xticks", len(f.XTicks), "yticks", len(f.YTicks))

	return f, nil
}

func (p *Plot) setSeries(xs, ys []float64, fill bool) error {
	yr, err := core.Bounds(ys)
	if err != nil {
		p.log.Warn("plot: no finite y values", "n", len(ys))
		return err
	}
	xr, err := core.Bounds(xs)
	if err != nil {
		p.log.Warn("plot: no finite x values", "n", len(xs))
		return err
	}

	p.xs, p.ys, p.fill = xs, ys, fill
	p.logY = false
	p.setData(xr, yr)

	return nil
}

// reduce decimates the series with the fixed width or the width derived
// from the point budget.
func (p *Plot) reduce(xs, ys []float64) ([]float64, []float64, error) {
	width := p.cfg.width
	if width <= 1 && p.cfg.budget > 0 {
		budget := p.cfg.budget
		if p.cfg.policy == decimate.PolicyMinMax {
			// Two points per bucket.
			budget = max(budget/2, 1)
		}
		width = decimate.BucketWidth(len(ys), budget)
	}

	if width <= 1 {
		return append([]float64(nil), xs...), append([]float64(nil), ys...), nil
	}

	s, err := decimate.NewSeries(xs, ys)
	if err != nil {
		return nil, nil, err
	}

	out, err := decimate.Decimate(s, width, p.cfg.policy)
	if err != nil {
		return nil, nil, err
	}

	rx, ry := out.XY()

	return rx, ry, nil
}

// indexed returns xs, or the sample index when xs is nil.
func indexed(xs []float64, n int) ([]float64, error) {
	if xs == nil {
		out := make([]float64, n)
		for i := range out {
			out[i] = float64(i)
		}
		return out, nil
	}

	if len(xs) != n {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(xs), n)
	}

	return xs, nil
}

func dropInvalid(xs, ys []float64) ([]float64, []float64) {
	ox := make([]float64, 0, len(ys))
	oy := make([]float64, 0, len(ys))
	for i, y := range ys {
		if core.IsFinite(y) {
			ox = append(ox, xs[i])
			oy = append(oy, y)
		}
	}

	return ox, oy
}
