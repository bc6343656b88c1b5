package colormap

import (
	"errors"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

func TestNamed(t *testing.T) {
	c, err := Named("SkyBlue2")
	if err != nil {
		t.Fatalf("Named: %v", err)
	}
	if got := c.Hex(); got != "#3465a4" {
		t.Fatalf("skyblue2 = %s", got)
	}

	if _, err := Named("mauve"); !errors.Is(err, ErrUnknownColor) {
		t.Fatalf("Named(mauve) error = %v", err)
	}

	for _, name := range Names() {
		if _, err := Named(name); err != nil {
			t.Fatalf("Named(%q): %v", name, err)
		}
	}
}

func TestEvenAnchors(t *testing.T) {
	a := EvenAnchors(red, green, blue, red, green)
	want := []float64{0, 0.25, 0.5, 0.75, 1}
	for i, p := range want {
		if a[i].Pos != p {
			t.Fatalf("anchor %d at %g, want %g", i, a[i].Pos, p)
		}
	}
	if err := validateAnchors(a); err != nil {
		t.Fatalf("validateAnchors: %v", err)
	}

	if one := EvenAnchors(green); len(one) != 2 || one[0].Color != green || one[1].Pos != 1 {
		t.Fatalf("EvenAnchors(green) = %v", one)
	}
	if EvenAnchors() != nil {
		t.Fatal("EvenAnchors() != nil")
	}
}

func TestPresets(t *testing.T) {
	for _, name := range PresetNames() {
		anchors, err := Preset(name)
		if err != nil {
			t.Fatalf("Preset(%q): %v", name, err)
		}
		if err := validateAnchors(anchors); err != nil {
			t.Fatalf("Preset(%q) anchors: %v", name, err)
		}
	}

	rgb, _ := Preset("rgb")
	if rgb[0].Color != (colorful.Color{R: 1}) || rgb[2].Color != (colorful.Color{B: 1}) {
		t.Fatalf("rgb preset = %v", rgb)
	}

	if _, err := Preset("jet"); !errors.Is(err, ErrUnknownPreset) {
		t.Fatalf("Preset(jet) error = %v", err)
	}
}
