package frame

import (
	"fmt"
	"log/slog"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/cwbudde/algo-plot/plot/core"
)

// Segment joins two tracks at a shared x position.
type Segment struct {
	Line
	// Delta is |y1 - y2| in data space.
	Delta float64
	Color colorful.Color
}

// Pitch overlays two tracks sampled on partly shared x positions, such as
// the pitch contours of two voices, and joins them by coloured segments.
type Pitch struct {
	view

	cfg    config
	log    *slog.Logger
	xs     []float64
	y1, y2 []float64
}

// NewPitch returns a Pitch configured by opts. Smoothing and decimation
// options are ignored.
func NewPitch(opts ...Option) (*Pitch, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	return &Pitch{
		view: newView(cfg.follow, cfg.colormap),
		cfg:  cfg,
		log:  cfg.logger,
	}, nil
}

// Overlay keeps the samples whose x exists in both tracks. Repeated x
// values pair up in order of appearance.
func (p *Pitch) Overlay(x1, y1, x2, y2 []float64) error {
	if len(x1) != len(y1) {
		return fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(x1), len(y1))
	}
	if len(x2) != len(y2) {
		return fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(x2), len(y2))
	}

	pending := make(map[float64][]int, len(x2))
	for j, x := range x2 {
		pending[x] = append(pending[x], j)
	}

	n := min(len(x1), len(x2))
	xs := make([]float64, 0, n)
	a := make([]float64, 0, n)
	b := make([]float64, 0, n)
	for i, x := range x1 {
		js := pending[x]
		if len(js) == 0 {
			continue
		}
		pending[x] = js[1:]

		xs = append(xs, x)
		a = append(a, y1[i])
		b = append(b, y2[js[0]])
	}

	if len(xs) == 0 {
		p.log.Warn("pitch: tracks share no x position", "n1", len(x1), "n2", len(x2))
		return core.ErrNoData
	}

	yr, err := core.Bounds(append(append(make([]float64, 0, 2*len(a)), a...), b...))
	if err != nil {
		p.log.Warn("pitch: no finite y values")
		return err
	}
	xr, err := core.Bounds(xs)
	if err != nil {
		return err
	}

	p.xs, p.y1, p.y2 = xs, a, b
	p.setData(xr, yr)
	p.log.Debug("pitch: overlay set", "shared", len(xs))

	return nil
}

// Shared returns the number of samples kept by the last Overlay.
func (p *Pitch) Shared() int {
	return len(p.xs)
}

// Segments projects the visible pairs onto r. Each segment is coloured by
// the colormap at the distance between the tracks.
func (p *Pitch) Segments(r Rect) ([]Segment, error) {
	segs, _, err := p.segments(r)
	return segs, err
}

// Render returns the segments together with the axis decoration.
func (p *Pitch) Render(r Rect) (Frame, error) {
	segs, f, err := p.segments(r)
	if err != nil {
		return Frame{}, err
	}

	f.Segments = segs

	return f, nil
}

func (p *Pitch) segments(r Rect) ([]Segment, Frame, error) {
	if r.Empty() {
		return nil, Frame{}, ErrEmptySurface
	}
	if !p.hasData {
		p.log.Warn("pitch: render without data")
		return nil, Frame{}, core.ErrNoData
	}

	xr, yr := p.visible()
	xp, yp := axes(r, p.cfg.margins, xr.Low, xr.High, yr.Low, yr.High)

	segs := make([]Segment, 0, len(p.xs))
	for i, x := range p.xs {
		if !xr.Contains(x) {
			continue
		}

		d := math.Abs(p.y1[i] - p.y2[i])
		if math.IsNaN(d) {
			continue
		}

		px := xp.Map(x)
		segs = append(segs, Segment{
			Line:  Line{X1: px, Y1: yp.Clipped(p.y1[i]), X2: px, Y2: yp.Clipped(p.y2[i])},
			Delta: d,
			Color: p.cm.Map(d),
		})
	}

	f := Frame{XRange: xr, YRange: yr}
	p.decorate(&f, r, &p.cfg, xp, yp)

	return segs, f, nil
}
