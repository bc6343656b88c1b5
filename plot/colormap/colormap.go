package colormap

import (
	"fmt"
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/cwbudde/algo-plot/plot/projection"
)

// Anchor pins a colour to a normalized position in [0, 1].
type Anchor struct {
	Pos   float64
	Color colorful.Color
}

// Config describes a colormap. Zero Anchors select the "rgb" preset and
// equal zero limits select [0, 1].
type Config struct {
	Name       string
	Anchors    []Anchor
	VMin, VMax float64
}

// Mapper is implemented by the continuous and the tabulated colormap.
type Mapper interface {
	Map(v float64) colorful.Color
	VLim() (vmin, vmax float64)
}

// Interpolated is a continuously interpolating colormap.
type Interpolated struct {
	name    string
	anchors []Anchor
	proj    *projection.Projection
}

// NewInterpolated returns a continuous colormap for cfg.
func NewInterpolated(cfg Config) (*Interpolated, error) {
	anchors := cfg.Anchors
	if len(anchors) == 0 {
		var err error
		if anchors, err = Preset("rgb"); err != nil {
			return nil, err
		}
	}

	m := &Interpolated{name: cfg.Name, proj: projection.New()}
	if err := m.SetAnchors(anchors); err != nil {
		return nil, err
	}

	vmin, vmax := cfg.VMin, cfg.VMax
	if vmin == 0 && vmax == 0 {
		vmax = 1
	}
	m.SetVLim(vmin, vmax)

	return m, nil
}

// Name returns the colormap name.
func (m *Interpolated) Name() string { return m.name }

// Anchors returns a copy of the anchors.
func (m *Interpolated) Anchors() []Anchor {
	out := make([]Anchor, len(m.anchors))
	copy(out, m.anchors)

	return out
}

// SetAnchors replaces the anchors. On error the colormap is unchanged.
func (m *Interpolated) SetAnchors(anchors []Anchor) error {
	if err := validateAnchors(anchors); err != nil {
		return err
	}

	m.anchors = make([]Anchor, len(anchors))
	copy(m.anchors, anchors)

	return nil
}

// SetVLim sets the value limits. Reversed limits are swapped.
func (m *Interpolated) SetVLim(vmin, vmax float64) {
	m.proj.SetInRange(vmin, vmax)
}

// VLim returns the value limits.
func (m *Interpolated) VLim() (vmin, vmax float64) {
	return m.proj.InRange()
}

// Map returns the colour for v.
func (m *Interpolated) Map(v float64) colorful.Color {
	return m.at(m.proj.Clipped(v))
}

// MapSlice maps every value of vs.
func (m *Interpolated) MapSlice(vs []float64) []colorful.Color {
	out := make([]colorful.Color, len(vs))
	for i, v := range vs {
		out[i] = m.Map(v)
	}

	return out
}

// MapRGBA returns the opaque 8-bit colour for v.
func (m *Interpolated) MapRGBA(v float64) color.RGBA {
	return toRGBA(m.Map(v))
}

// Visualization returns 40 evenly spaced values across the limits and
// their colours. cb, if not nil, replaces Map.
func (m *Interpolated) Visualization(cb func(float64) colorful.Color) ([]float64, []colorful.Color, error) {
	return Visualization(m, 40, cb)
}

// at interpolates the anchors at the normalized position t.
func (m *Interpolated) at(t float64) colorful.Color {
	a := m.anchors
	if t <= a[0].Pos {
		return a[0].Color
	}

	for i := 1; i < len(a); i++ {
		if t > a[i].Pos {
			continue
		}

		w := a[i].Pos - a[i-1].Pos
		if w <= 0 {
			return a[i].Color
		}

		return a[i-1].Color.BlendRgb(a[i].Color, (t-a[i-1].Pos)/w)
	}

	return a[len(a)-1].Color
}

func validateAnchors(anchors []Anchor) error {
	if len(anchors) < 2 {
		return ErrNoAnchors
	}

	if anchors[0].Pos != 0 || anchors[len(anchors)-1].Pos != 1 {
		return fmt.Errorf("%w: range [%g, %g]", ErrAnchorOrder, anchors[0].Pos, anchors[len(anchors)-1].Pos)
	}

	for i := 1; i < len(anchors); i++ {
		p := anchors[i].Pos
		if math.IsNaN(p) || p < anchors[i-1].Pos {
			return fmt.Errorf("%w: anchor %d at %g", ErrAnchorOrder, i, p)
		}
	}

	return nil
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()

	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
