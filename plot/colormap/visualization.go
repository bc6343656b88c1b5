package colormap

import (
	"github.com/aclements/go-moremath/vec"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/cwbudde/algo-plot/plot/core"
)

// Visualization samples n evenly spaced values across the limits of m and
// colours them with cb, or with m.Map when cb is nil.
func Visualization(m Mapper, n int, cb func(float64) colorful.Color) ([]float64, []colorful.Color, error) {
	if n < 1 {
		return nil, nil, core.ErrNoData
	}
	if cb == nil {
		cb = m.Map
	}

	vmin, vmax := m.VLim()
	values := vec.Linspace(vmin, vmax, n)

	colors := make([]colorful.Color, n)
	for i, v := range values {
		colors[i] = cb(v)
	}

	return values, colors, nil
}
