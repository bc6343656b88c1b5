package frame

import (
	"math"
	"strconv"

	"github.com/cwbudde/algo-plot/plot/autoscale"
	"github.com/cwbudde/algo-plot/plot/colormap"
	"github.com/cwbudde/algo-plot/plot/core"
	"github.com/cwbudde/algo-plot/plot/projection"
)

// view holds the axis limits shared by Plot and Pitch.
type view struct {
	xlim, ylim   [2]float64
	dataX, dataY core.Interval
	hasData      bool
	follow       float64
	xzoom        float64
	logY         bool
	cm           *colormap.Tabulated
}

func newView(follow float64, cm *colormap.Tabulated) view {
	nan := math.NaN()
	return view{
		xlim:   [2]float64{nan, nan},
		ylim:   [2]float64{nan, nan},
		follow: follow,
		cm:     cm,
	}
}

// SetXLim pins the x limits. A NaN bound follows the data.
func (v *view) SetXLim(low, high float64) {
	v.xlim = [2]float64{low, high}
}

// SetYLim pins the y limits. A NaN bound follows the data. The colormap
// limits follow the y limits.
func (v *view) SetYLim(low, high float64) {
	v.ylim = [2]float64{low, high}
	v.syncColormap()
}

// SetXZoom widens (positive z) or narrows (negative z) the visible x range
// by z times half its width on each side.
func (v *view) SetXZoom(z float64) {
	v.xzoom = z
}

// Limits returns the x and y limits after pinning and following, without
// zoom. ok is false before the first data arrived.
func (v *view) Limits() (x, y core.Interval, ok bool) {
	if !v.hasData {
		return core.Interval{}, core.Interval{}, false
	}

	y = v.dataY
	if !math.IsNaN(v.ylim[0]) {
		y.Low = v.ylim[0]
	}
	if !math.IsNaN(v.ylim[1]) {
		y.High = v.ylim[1]
	}

	x = v.dataX
	if v.follow > 0 {
		x.Low = math.Max(v.dataX.High-v.follow, 0)
		x.High = math.Max(v.dataX.High, v.follow)
	} else {
		if !math.IsNaN(v.xlim[0]) {
			x.Low = v.xlim[0]
		}
		if !math.IsNaN(v.xlim[1]) {
			x.High = v.xlim[1]
		}
	}

	return core.NewInterval(x.Low, x.High), core.NewInterval(y.Low, y.High), true
}

// Colormap returns the colormap driven by the y limits.
func (v *view) Colormap() *colormap.Tabulated {
	return v.cm
}

func (v *view) setData(xr, yr core.Interval) {
	v.dataX, v.dataY, v.hasData = xr, yr, true
	v.syncColormap()
}

func (v *view) syncColormap() {
	if _, y, ok := v.Limits(); ok {
		v.cm.SetVLim(y.Low, y.High)
	}
}

// visible returns the zoomed x range and the y range.
func (v *view) visible() (x, y core.Interval) {
	x, y, _ = v.Limits()
	z := v.xzoom * x.Width() / 2

	return core.NewInterval(x.Low-z, x.High+z), y
}

// decorate fills the ticks and grid lines of f.
func (v *view) decorate(f *Frame, r Rect, cfg *config, xp, yp *projection.Projection) {
	x, y, _ := v.Limits()

	f.XTicks = axisTicks(cfg.xscaler, x, f.XRange, xp)
	f.YTicks = nil
	if v.logY {
		f.YTicks = logAxisTicks(cfg.yscaler, y, f.YRange, yp)
	}
	if f.YTicks == nil {
		f.YTicks = axisTicks(cfg.yscaler, y, f.YRange, yp)
	}

	if !cfg.grid {
		return
	}

	x0 := r.X + r.W*cfg.margins.Left*0.8
	f.GridLines = make([]Line, len(f.YTicks))
	for i, t := range f.YTicks {
		f.GridLines[i] = Line{X1: x0, Y1: t.Pixel, X2: r.X + r.W, Y2: t.Pixel}
	}
}

// axisTicks labels the ticks of the nice scale for data that fall inside
// visible.
func axisTicks(a *autoscale.AutoScaler, data, visible core.Interval, p *projection.Projection) []AxisTick {
	s := a.MakeScale(data.Low, data.High)
	ticks := a.Label(s, s.Ticks())
	tol := s.Increment * 1e-9

	out := make([]AxisTick, 0, len(ticks))
	for _, t := range ticks {
		if t.Value < visible.Low-tol || t.Value > visible.High+tol {
			continue
		}
		out = append(out, AxisTick{Value: t.Value, Pixel: p.Map(t.Value), Label: t.Label})
	}

	return out
}

// logAxisTicks places decade ticks on an axis that holds natural logarithms.
// Tick values are in linear units. It returns nil when no log scale fits
// the range.
func logAxisTicks(a *autoscale.AutoScaler, data, visible core.Interval, p *projection.Projection) []AxisTick {
	major, _, err := a.LogTicks(math.Exp(data.Low), math.Exp(data.High), 0)
	if err != nil || len(major) == 0 {
		return nil
	}

	tol := math.Max(visible.Width(), 1) * 1e-9

	out := make([]AxisTick, 0, len(major))
	for _, m := range major {
		lv := math.Log(m)
		if lv < visible.Low-tol || lv > visible.High+tol {
			continue
		}
		out = append(out, AxisTick{Value: m, Pixel: p.Map(lv), Label: strconv.FormatFloat(m, 'g', -1, 64)})
	}

	return out
}
