package frame_test

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-plot/plot/frame"
)

func ExamplePlot_Render() {
	p, err := frame.New()
	if err != nil {
		panic(err)
	}
	if err := p.Plot(nil, []float64{0, 1, 2, 3, 4}); err != nil {
		panic(err)
	}

	f, err := p.Render(frame.Rect{W: 100, H: 100})
	if err != nil {
		panic(err)
	}

	points := make([]string, len(f.Points))
	for i, pt := range f.Points {
		points[i] = fmt.Sprintf("(%.2f, %.2f)", pt.X, pt.Y)
	}
	fmt.Println(strings.Join(points, " "))

	labels := make([]string, len(f.XTicks))
	for i, t := range f.XTicks {
		labels[i] = t.Label
	}
	fmt.Println(strings.Join(labels, " "))

	// Output:
	// (15.00, 90.00) (36.25, 70.00) (57.50, 50.00) (78.75, 30.00) (100.00, 10.00)
	// 0.0 0.5 1.0 1.5 2.0 2.5 3.0 3.5
}

func ExampleGauge() {
	g := frame.NewGauge(0, 0)
	g.SetValue(375)

	start, span := g.Arc()
	ticks := g.Ticks()
	fmt.Println(start, span)
	fmt.Println(len(ticks), ticks[0].Label, ticks[len(ticks)-1].Label)

	// Output:
	// 180 -45
	// 8 0.0e3 1.4e3
}
