package colormap

import (
	"image/color"

	"github.com/aclements/go-moremath/vec"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// DefaultBuckets is the table resolution used when NewTabulated is given a
// non-positive bucket count.
const DefaultBuckets = 20

// Tabulated is a colormap with n buckets and n+1 precomputed colours.
type Tabulated struct {
	interp *Interpolated
	n      int
	values []float64
	colors []colorful.Color
	rgba   []color.RGBA
}

// NewTabulated returns a tabulated colormap with n buckets.
func NewTabulated(cfg Config, n int) (*Tabulated, error) {
	interp, err := NewInterpolated(cfg)
	if err != nil {
		return nil, err
	}

	if n <= 0 {
		n = DefaultBuckets
	}

	t := &Tabulated{interp: interp, n: n}
	t.rebuild()

	return t, nil
}

// Name returns the colormap name.
func (t *Tabulated) Name() string { return t.interp.Name() }

// Buckets returns the number of buckets.
func (t *Tabulated) Buckets() int { return t.n }

// Values returns the n+1 sample values of the table.
func (t *Tabulated) Values() []float64 {
	out := make([]float64, len(t.values))
	copy(out, t.values)

	return out
}

// SetVLim sets the value limits and rebuilds the table.
func (t *Tabulated) SetVLim(vmin, vmax float64) {
	t.interp.SetVLim(vmin, vmax)
	t.rebuild()
}

// VLim returns the value limits.
func (t *Tabulated) VLim() (vmin, vmax float64) {
	return t.interp.VLim()
}

// SetAnchors replaces the anchors and rebuilds the table.
func (t *Tabulated) SetAnchors(anchors []Anchor) error {
	if err := t.interp.SetAnchors(anchors); err != nil {
		return err
	}
	t.rebuild()

	return nil
}

// Anchors returns a copy of the anchors.
func (t *Tabulated) Anchors() []Anchor { return t.interp.Anchors() }

// Index returns the table index for v, always in [0, n]. NaN maps to 0.
func (t *Tabulated) Index(v float64) int {
	i := int(t.interp.proj.Clipped(v) * float64(t.n))
	switch {
	case i < 0:
		return 0
	case i > t.n:
		return t.n
	default:
		return i
	}
}

// Map returns the tabulated colour for v.
func (t *Tabulated) Map(v float64) colorful.Color {
	return t.colors[t.Index(v)]
}

// MapRGBA returns the tabulated 8-bit colour for v.
func (t *Tabulated) MapRGBA(v float64) color.RGBA {
	return t.rgba[t.Index(v)]
}

// Visualization returns the table values and their colours. cb, if not
// nil, replaces Map.
func (t *Tabulated) Visualization(cb func(float64) colorful.Color) ([]float64, []colorful.Color, error) {
	return Visualization(t, t.n+1, cb)
}

func (t *Tabulated) rebuild() {
	vmin, vmax := t.interp.VLim()
	t.values = vec.Linspace(vmin, vmax, t.n+1)

	if cap(t.colors) < len(t.values) {
		t.colors = make([]colorful.Color, len(t.values))
		t.rgba = make([]color.RGBA, len(t.values))
	}
	t.colors = t.colors[:len(t.values)]
	t.rgba = t.rgba[:len(t.values)]

	for i, v := range t.values {
		c := t.interp.Map(v)
		t.colors[i] = c
		t.rgba[i] = toRGBA(c)
	}
}
