package frame

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/cwbudde/algo-plot/plot/colormap"
	"github.com/cwbudde/algo-plot/plot/core"
	"github.com/cwbudde/algo-plot/plot/projection"
)

// LegendPatch is one colour band of a legend.
type LegendPatch struct {
	Rect
	Value float64
	Color colorful.Color
}

// Legend samples n values across the limits of m and stacks one patch per
// consecutive pair over the height of r, lowest value at the top. It
// returns core.ErrNoData for n < 2.
func Legend(m colormap.Mapper, n int, r Rect) ([]LegendPatch, error) {
	if r.Empty() {
		return nil, ErrEmptySurface
	}
	if n < 2 {
		return nil, core.ErrNoData
	}

	values, colors, err := colormap.Visualization(m, n, nil)
	if err != nil {
		return nil, err
	}

	bounds, err := core.Bounds(values)
	if err != nil {
		return nil, err
	}

	p := projection.New()
	p.SetInRange(bounds.Low, bounds.High)
	p.SetOutRange(r.Y, r.Y+r.H)
	ys := p.MapSlice(values)

	out := make([]LegendPatch, len(values)-1)
	for i := range out {
		out[i] = LegendPatch{
			Rect:  Rect{X: r.X, Y: ys[i], W: r.W, H: ys[i+1] - ys[i]},
			Value: values[i],
			Color: colors[i],
		}
	}

	return out, nil
}
