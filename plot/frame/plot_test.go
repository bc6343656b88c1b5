package frame

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/cwbudde/algo-plot/dsp/window"
	"github.com/cwbudde/algo-plot/internal/testutil"
	"github.com/cwbudde/algo-plot/plot/core"
	"github.com/cwbudde/algo-plot/plot/decimate"
)

var surface = Rect{W: 800, H: 600}

func newPlot(t *testing.T, opts ...Option) *Plot {
	t.Helper()

	p, err := New(opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return p
}

func TestRenderRampStaysInsideArea(t *testing.T) {
	p := newPlot(t)
	if err := p.Plot(nil, testutil.Ramp(0, 1, 1000)); err != nil {
		t.Fatalf("Plot() error = %v", err)
	}

	f, err := p.Render(surface)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if len(f.Points) != 1000 {
		t.Fatalf("len(Points) = %d, want 1000", len(f.Points))
	}

	area := DefaultMargins.Area(surface)
	for i, pt := range f.Points {
		if !area.Contains(pt.X, pt.Y) {
			t.Fatalf("point %d = %+v outside %+v", i, pt, area)
		}
	}

	first, last := f.Points[0], f.Points[len(f.Points)-1]
	if first.X != 120 || first.Y != 540 {
		t.Fatalf("first point = %+v, want {120 540}", first)
	}
	if last.X != 800 || last.Y != 60 {
		t.Fatalf("last point = %+v, want {800 60}", last)
	}

	if len(f.XTicks) != 10 {
		t.Fatalf("len(XTicks) = %d, want 10", len(f.XTicks))
	}
	if f.XTicks[1].Value != 100 || f.XTicks[1].Label != "0.1e3" {
		t.Fatalf("XTicks[1] = %+v", f.XTicks[1])
	}
	if f.YTicks[0].Pixel != 540 {
		t.Fatalf("YTicks[0].Pixel = %v, want 540", f.YTicks[0].Pixel)
	}
	if f.Fill || f.GridLines != nil {
		t.Fatalf("unexpected fill %v or grid %v", f.Fill, f.GridLines)
	}
}

func TestRenderErrors(t *testing.T) {
	p := newPlot(t)

	if _, err := p.Render(surface); !errors.Is(err, core.ErrNoData) {
		t.Fatalf("Render() without data error = %v, want ErrNoData", err)
	}
	if err := p.Plot(nil, nil); !errors.Is(err, core.ErrNoData) {
		t.Fatalf("Plot(nil, nil) error = %v, want ErrNoData", err)
	}
	if err := p.Plot([]float64{1}, []float64{1, 2}); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("Plot() mismatch error = %v", err)
	}
	if err := p.Plot(nil, []float64{math.NaN()}); !errors.Is(err, core.ErrNoData) {
		t.Fatalf("Plot(NaN) error = %v, want ErrNoData", err)
	}

	if err := p.Plot(nil, []float64{1, 2}); err != nil {
		t.Fatal(err)
	}
	if _, err := p.Render(Rect{W: 10}); !errors.Is(err, ErrEmptySurface) {
		t.Fatalf("Render(empty) error = %v, want ErrEmptySurface", err)
	}
}

func TestDecimation(t *testing.T) {
	ramp := testutil.Ramp(0, 1, 1000)

	t.Run("budget", func(t *testing.T) {
		p := newPlot(t, WithPointBudget(100))
		if err := p.Plot(nil, ramp); err != nil {
			t.Fatal(err)
		}

		xs, ys := p.Data()
		if len(ys) != 100 || len(xs) != 100 {
			t.Fatalf("len(Data()) = %d, %d; want 100", len(xs), len(ys))
		}
		if ys[0] != 0 || ys[1] != 19 || xs[1] != 19 {
			t.Fatalf("first bucket = (%v, %v), (%v, %v)", xs[0], ys[0], xs[1], ys[1])
		}
	})

	t.Run("mean", func(t *testing.T) {
		p := newPlot(t, WithDecimation(decimate.PolicyMean, 10))
		if err := p.Plot(nil, ramp); err != nil {
			t.Fatal(err)
		}

		_, ys := p.Data()
		if len(ys) != 100 {
			t.Fatalf("len = %d, want 100", len(ys))
		}
		if math.Abs(ys[0]-4.5) > 1e-12 || math.Abs(ys[99]-994.5) > 1e-9 {
			t.Fatalf("means = %v .. %v", ys[0], ys[99])
		}
	})

	t.Run("fixed width wins", func(t *testing.T) {
		p := newPlot(t, WithDecimation(decimate.PolicyMean, 500), WithPointBudget(100))
		if err := p.Plot(nil, ramp); err != nil {
			t.Fatal(err)
		}
		if _, ys := p.Data(); len(ys) != 2 {
			t.Fatalf("len = %d, want 2", len(ys))
		}
	})
}

func TestFollow(t *testing.T) {
	p := newPlot(t, WithFollow(3))
	if err := p.Plot(nil, testutil.Ramp(0, 1, 10)); err != nil {
		t.Fatal(err)
	}

	x, _, ok := p.Limits()
	if !ok || x.Low != 6 || x.High != 9 {
		t.Fatalf("Limits() x = %+v, %v; want [6, 9]", x, ok)
	}

	f, err := p.Render(surface)
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Points) != 4 {
		t.Fatalf("len(Points) = %d, want 4", len(f.Points))
	}

	long := newPlot(t, WithFollow(30))
	if err := long.Plot(nil, testutil.Ramp(0, 1, 10)); err != nil {
		t.Fatal(err)
	}
	if x, _, _ := long.Limits(); x.Low != 0 || x.High != 30 {
		t.Fatalf("Limits() x = %+v, want [0, 30]", x)
	}
}

func TestPinnedLimits(t *testing.T) {
	p := newPlot(t)
	if err := p.Plot(nil, testutil.Ramp(0, 1, 6)); err != nil {
		t.Fatal(err)
	}

	p.SetYLim(math.NaN(), 10)
	p.SetXLim(2, math.NaN())

	x, y, _ := p.Limits()
	if x != (core.Interval{Low: 2, High: 5}) || y != (core.Interval{Low: 0, High: 10}) {
		t.Fatalf("Limits() = %+v, %+v", x, y)
	}
	if lo, hi := p.Colormap().VLim(); lo != 0 || hi != 10 {
		t.Fatalf("colormap VLim() = %v, %v; want 0, 10", lo, hi)
	}

	f, err := p.Render(surface)
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Points) != 4 {
		t.Fatalf("len(Points) = %d, want 4", len(f.Points))
	}
}

func TestXZoom(t *testing.T) {
	p := newPlot(t)
	if err := p.Plot(nil, testutil.Ramp(0, 1, 11)); err != nil {
		t.Fatal(err)
	}
	p.SetXZoom(1)

	f, err := p.Render(surface)
	if err != nil {
		t.Fatal(err)
	}

	if f.XRange != (core.Interval{Low: -5, High: 15}) {
		t.Fatalf("XRange = %+v, want [-5, 15]", f.XRange)
	}

	area := DefaultMargins.Area(surface)
	want := area.X + area.W/4
	if math.Abs(f.Points[0].X-want) > 1e-9 {
		t.Fatalf("Points[0].X = %v, want %v", f.Points[0].X, want)
	}
}

func TestPlotLog(t *testing.T) {
	p := newPlot(t)
	if err := p.PlotLog(nil, []float64{1, math.E, -1, 0, math.E * math.E}); err != nil {
		t.Fatal(err)
	}

	xs, ys := p.Data()
	testutil.RequireSliceNearlyEqual(t, xs, []float64{0, 1, 4}, 0)
	testutil.RequireSliceNearlyEqual(t, ys, []float64{0, 1, 2}, 1e-12)

	if err := p.PlotLog(nil, []float64{-1, 0}); !errors.Is(err, core.ErrNoData) {
		t.Fatalf("PlotLog(non-positive) error = %v", err)
	}
}

func TestPlotLogDecadeTicks(t *testing.T) {
	p := newPlot(t)
	if err := p.PlotLog(nil, []float64{1, 10, 100, 1000}); err != nil {
		t.Fatal(err)
	}

	f, err := p.Render(surface)
	if err != nil {
		t.Fatal(err)
	}

	area := DefaultMargins.Area(surface)
	_, y, _ := p.Limits()
	values := make(map[float64]AxisTick, len(f.YTicks))
	for _, tick := range f.YTicks {
		if !(tick.Value > 0) || tick.Pixel < area.Y-1e-9 || tick.Pixel > area.Y+area.H+1e-9 {
			t.Fatalf("log tick %+v outside the plot area", tick)
		}
		values[tick.Value] = tick
	}

	for _, want := range []float64{1, 10, 100} {
		tick, ok := values[want]
		if !ok {
			t.Fatalf("YTicks %+v lack %g", f.YTicks, want)
		}
		// The axis holds ln(y), so the tick sits at ln(value).
		frac := (math.Log(want) - y.Low) / y.Width()
		pixel := area.Y + area.H*(1-frac)
		if math.Abs(tick.Pixel-pixel) > 1e-6 {
			t.Fatalf("tick %g at pixel %v, want %v", want, tick.Pixel, pixel)
		}
	}
	if values[10].Label != "10" {
		t.Fatalf("label = %q, want 10", values[10].Label)
	}

	if err := p.Plot(nil, []float64{1, 10, 100, 1000}); err != nil {
		t.Fatal(err)
	}
	f, err = p.Render(surface)
	if err != nil {
		t.Fatal(err)
	}
	if len(f.YTicks) < 3 {
		t.Fatalf("linear plot YTicks = %+v", f.YTicks)
	}
	step := f.YTicks[1].Value - f.YTicks[0].Value
	for i := 2; i < len(f.YTicks); i++ {
		if d := f.YTicks[i].Value - f.YTicks[i-1].Value; math.Abs(d-step) > 1e-9*step {
			t.Fatalf("linear plot YTicks %+v are not evenly spaced", f.YTicks)
		}
	}
}

func TestIgnoreNaN(t *testing.T) {
	p := newPlot(t, WithIgnoreNaN())
	if err := p.Plot(nil, []float64{1, math.NaN(), 3, math.Inf(1)}); err != nil {
		t.Fatal(err)
	}

	xs, ys := p.Data()
	testutil.RequireSliceNearlyEqual(t, xs, []float64{0, 2}, 0)
	testutil.RequireSliceNearlyEqual(t, ys, []float64{1, 3}, 0)
}

func TestFillBetween(t *testing.T) {
	p := newPlot(t)
	if err := p.FillBetween([]float64{0, 1, 2}, []float64{1, 2, 3}, []float64{0, 0, 0}); err != nil {
		t.Fatal(err)
	}

	xs, ys := p.Data()
	testutil.RequireSliceNearlyEqual(t, xs, []float64{0, 1, 2, 2, 1, 0}, 0)
	testutil.RequireSliceNearlyEqual(t, ys, []float64{1, 2, 3, 0, 0, 0}, 0)

	f, err := p.Render(surface)
	if err != nil {
		t.Fatal(err)
	}
	if !f.Fill || len(f.Points) != 6 {
		t.Fatalf("Fill = %v, len(Points) = %d", f.Fill, len(f.Points))
	}

	if err := p.FillBetween(nil, []float64{1}, []float64{1, 2}); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("FillBetween() mismatch error = %v", err)
	}
}

func TestSmoothingKeepsConstant(t *testing.T) {
	p := newPlot(t, WithSmoothing(5, window.TypeHann))
	if err := p.Plot(nil, testutil.DC(2, 50)); err != nil {
		t.Fatal(err)
	}

	_, ys := p.Data()
	if len(ys) != 50 {
		t.Fatalf("len = %d, want 50", len(ys))
	}
	testutil.RequireWithin(t, ys, 2, 2, 1e-12)
}

func TestSmoothingRejectsUnknownWindow(t *testing.T) {
	if _, err := New(WithSmoothing(5, window.Type(99))); !errors.Is(err, window.ErrUnknownType) {
		t.Fatalf("New() error = %v, want ErrUnknownType", err)
	}
}

func TestGridLines(t *testing.T) {
	p := newPlot(t, WithGrid(true))
	if err := p.Plot(nil, testutil.Ramp(0, 1, 100)); err != nil {
		t.Fatal(err)
	}

	f, err := p.Render(surface)
	if err != nil {
		t.Fatal(err)
	}

	if len(f.GridLines) == 0 || len(f.GridLines) != len(f.YTicks) {
		t.Fatalf("len(GridLines) = %d, len(YTicks) = %d", len(f.GridLines), len(f.YTicks))
	}
	for i, l := range f.GridLines {
		if math.Abs(l.X1-96) > 1e-9 || l.X2 != 800 || l.Y1 != f.YTicks[i].Pixel {
			t.Fatalf("GridLines[%d] = %+v", i, l)
		}
	}
}

func TestLoggerReceivesWarnings(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	p := newPlot(t, WithLogger(logger))
	_, _ = p.Render(surface)

	if out := buf.String(); !strings.Contains(out, "level=WARN") || !strings.Contains(out, "render without data") {
		t.Fatalf("log output = %q", out)
	}

	buf.Reset()
	if err := p.Plot(nil, []float64{1, 2, 3}); err != nil {
		t.Fatal(err)
	}
	if out := buf.String(); !strings.Contains(out, "level=DEBUG") || !strings.Contains(out, "out=3") {
		t.Fatalf("log output = %q", out)
	}
}
