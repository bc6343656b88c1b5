package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-plot/dsp/window"
	"github.com/cwbudde/algo-plot/plot/colormap"
	"github.com/cwbudde/algo-plot/plot/decimate"
	"github.com/cwbudde/algo-plot/plot/frame"
)

func printList(w io.Writer) error {
	policies := []string{decimate.PolicyMean.String(), decimate.PolicyMinMax.String()}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "windows\t%s\n", strings.Join(window.Names(), " "))
	fmt.Fprintf(tw, "policies\t%s\n", strings.Join(policies, " "))
	fmt.Fprintf(tw, "colormaps\t%s\n", strings.Join(colormap.PresetNames(), " "))
	fmt.Fprintf(tw, "colors\t%s\n", strings.Join(colormap.Names(), " "))

	return tw.Flush()
}

func printFrame(w io.Writer, tr track, f frame.Frame, points bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "samples\t%d\n", len(tr.samples))
	fmt.Fprintf(tw, "rate\t%g Hz\n", tr.sampleRate)
	fmt.Fprintf(tw, "points\t%d\n", len(f.Points))
	fmt.Fprintf(tw, "x range\t%.6g .. %.6g\n", f.XRange.Low, f.XRange.High)
	fmt.Fprintf(tw, "y range\t%.6g .. %.6g\n", f.YRange.Low, f.YRange.High)
	fmt.Fprintln(tw)

	fmt.Fprintf(tw, "Axis\tValue\tPixel\tLabel\n")
	fmt.Fprintf(tw, "----\t-----\t-----\t-----\n")
	for _, t := range f.XTicks {
		fmt.Fprintf(tw, "x\t%g\t%.1f\t%s\n", t.Value, t.Pixel, t.Label)
	}
	for _, t := range f.YTicks {
		fmt.Fprintf(tw, "y\t%g\t%.1f\t%s\n", t.Value, t.Pixel, t.Label)
	}

	if points {
		fmt.Fprintln(tw)
		fmt.Fprintf(tw, "X\tY\n")
		fmt.Fprintf(tw, "-\t-\n")
		for _, p := range f.Points {
			fmt.Fprintf(tw, "%.2f\t%.2f\n", p.X, p.Y)
		}
	}

	return tw.Flush()
}

func printLegend(w io.Writer, patches []frame.LegendPatch) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "Value\tTop\tHeight\tColor\n")
	fmt.Fprintf(tw, "-----\t---\t------\t-----\n")
	for _, p := range patches {
		fmt.Fprintf(tw, "%.4g\t%.1f\t%.1f\t%s\n", p.Value, p.Y, p.H, p.Color.Clamped().Hex())
	}

	return tw.Flush()
}
