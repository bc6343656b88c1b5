// Command plotprep prepares a series for drawing and prints the frame a
// live plot would render from it.
//
// Usage:
//
//	plotprep [flags] file.wav
//	plotprep -demo sine|noise|ramp [flags]
//
// The samples are mixed to mono, smoothed, decimated to the point budget
// and projected onto a width x height pixel surface. The output lists the
// axis ticks, optionally the pixel points and a colormap legend.
//
// Examples:
//
//	plotprep -demo sine
//	plotprep -window hamming -wlen 31 -budget 400 take1.wav
//	plotprep -demo noise -policy mean -decimate 64 -points
//	plotprep -demo ramp -legend 10 -colormap viridis
//	plotprep -list
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
)

func main() {
	var o options
	flag.Float64Var(&o.width, "width", 800, "surface width in pixels")
	flag.Float64Var(&o.height, "height", 400, "surface height in pixels")
	flag.StringVar(&o.window, "window", "hanning", "smoothing window (see -list)")
	flag.IntVar(&o.wlen, "wlen", 11, "smoothing window length in samples, below 3 disables smoothing")
	flag.StringVar(&o.policy, "policy", "minmax", "decimation policy: mean or minmax")
	flag.IntVar(&o.budget, "budget", 0, "maximum number of points, 0 uses the surface width")
	flag.IntVar(&o.decimate, "decimate", 0, "fixed bucket width, overrides -budget")
	flag.IntVar(&o.ticks, "ticks", 7, "approximate number of ticks per axis")
	flag.StringVar(&o.colormap, "colormap", "rgb", "colormap preset (see -list)")
	flag.IntVar(&o.legend, "legend", 0, "number of legend samples, 0 disables the legend")
	flag.BoolVar(&o.points, "points", false, "print every pixel point")
	flag.BoolVar(&o.profile, "profile", false, "log stage timings")
	flag.StringVar(&o.demo, "demo", "", "use a generated signal instead of a file: sine, noise or ramp")
	flag.IntVar(&o.samples, "n", 48000, "number of demo samples")
	list := flag.Bool("list", false, "list window names, decimation policies and colormaps")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: plotprep [flags] file.wav\n")
		fmt.Fprintf(os.Stderr, "       plotprep -demo sine|noise|ramp [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Smooths, decimates and projects a series onto a pixel surface.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  plotprep -demo sine\n")
		fmt.Fprintf(os.Stderr, "  plotprep -window hamming -wlen 31 -budget 400 take1.wav\n")
		fmt.Fprintf(os.Stderr, "  plotprep -demo ramp -legend 10 -colormap viridis\n")
		fmt.Fprintf(os.Stderr, "  plotprep -list\n")
	}
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *list {
		if err := printList(os.Stdout); err != nil {
			logger.Error("list failed", "err", err)
			os.Exit(1)
		}
		return
	}

	if o.demo == "" {
		if flag.NArg() != 1 {
			flag.Usage()
			os.Exit(2)
		}
		o.path = flag.Arg(0)
	}

	if err := run(o, os.Stdout, logger); err != nil {
		logger.Error("plotprep failed", "err", err)
		os.Exit(1)
	}
}
