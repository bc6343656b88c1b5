package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/cwbudde/algo-plot/dsp/signal"
	"github.com/cwbudde/algo-plot/dsp/window"
	"github.com/cwbudde/algo-plot/internal/profile"
	"github.com/cwbudde/algo-plot/plot/autoscale"
	"github.com/cwbudde/algo-plot/plot/colormap"
	"github.com/cwbudde/algo-plot/plot/decimate"
	"github.com/cwbudde/algo-plot/plot/frame"
)

type options struct {
	width, height float64
	window        string
	wlen          int
	policy        string
	budget        int
	decimate      int
	ticks         int
	colormap      string
	legend        int
	points        bool
	profile       bool
	demo          string
	samples       int
	path          string
}

func run(o options, w io.Writer, logger *slog.Logger) error {
	prof := profile.New()
	prof.Start()

	var (
		tr  track
		err error
	)
	if o.demo != "" {
		tr, err = demoTrack(o.demo, o.samples)
	} else {
		tr, err = loadFile(o.path)
	}
	if err != nil {
		return err
	}
	logger.Debug("input loaded", "samples", len(tr.samples), "rate", tr.sampleRate)
	prof.Mark("load")

	surface := frame.Rect{W: o.width, H: o.height}
	if surface.Empty() {
		return fmt.Errorf("plotprep: surface %gx%g: %w", o.width, o.height, frame.ErrEmptySurface)
	}

	plot, cm, err := newPlot(o, logger)
	if err != nil {
		return err
	}

	xs, err := signal.NewGenerator(signal.WithSampleRate(tr.sampleRate)).Times(len(tr.samples))
	if err != nil {
		return err
	}
	if err := plot.Plot(xs, tr.samples); err != nil {
		return err
	}
	prof.Mark("prepare")

	f, err := plot.Render(surface)
	if err != nil {
		return err
	}
	prof.Mark("render")

	if err := printFrame(w, tr, f, o.points); err != nil {
		return err
	}

	if o.legend > 0 {
		patches, err := frame.Legend(cm, o.legend, frame.Rect{W: o.width * 0.05, H: o.height})
		if err != nil {
			return err
		}
		if err := printLegend(w, patches); err != nil {
			return err
		}
	}
	prof.Mark("print")

	if o.profile {
		logger.Info("stage timings", "profile", prof)
	}

	return nil
}

func newPlot(o options, logger *slog.Logger) (*frame.Plot, *colormap.Tabulated, error) {
	kind, err := window.ParseType(o.window)
	if err != nil {
		return nil, nil, err
	}

	policy, err := decimate.ParsePolicy(o.policy)
	if err != nil {
		return nil, nil, err
	}

	anchors, err := colormap.Preset(o.colormap)
	if err != nil {
		return nil, nil, err
	}
	cm, err := colormap.NewTabulated(colormap.Config{Name: o.colormap, Anchors: anchors}, colormap.DefaultBuckets)
	if err != nil {
		return nil, nil, err
	}

	budget := o.budget
	if budget <= 0 {
		budget = int(o.width)
	}

	opts := []frame.Option{
		frame.WithLogger(logger),
		frame.WithDecimation(policy, o.decimate),
		frame.WithPointBudget(budget),
		frame.WithColormap(cm),
		frame.WithScalers(
			autoscale.New(autoscale.WithApproxTicks(o.ticks)),
			autoscale.New(autoscale.WithApproxTicks(o.ticks)),
		),
		frame.WithGrid(true),
		frame.WithIgnoreNaN(),
	}
	if o.wlen >= 3 {
		opts = append(opts, frame.WithSmoothing(o.wlen, kind))
	}

	plot, err := frame.New(opts...)
	if err != nil {
		return nil, nil, err
	}

	return plot, cm, nil
}
