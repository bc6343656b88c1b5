package frame

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-plot/plot/core"
)

func TestPitchOverlayKeepsSharedX(t *testing.T) {
	p, err := NewPitch()
	if err != nil {
		t.Fatal(err)
	}

	err = p.Overlay(
		[]float64{0, 1, 2, 3}, []float64{1, 2, 3, 4},
		[]float64{1, 3, 5}, []float64{1, 1, 1},
	)
	if err != nil {
		t.Fatalf("Overlay() error = %v", err)
	}
	if p.Shared() != 2 {
		t.Fatalf("Shared() = %d, want 2", p.Shared())
	}

	segs, err := p.Segments(Rect{W: 100, H: 100})
	if err != nil {
		t.Fatalf("Segments() error = %v", err)
	}
	if len(segs) != 2 {
		t.Fatalf("len(Segments()) = %d, want 2", len(segs))
	}

	for i, want := range []float64{1, 3} {
		s := segs[i]
		if s.Delta != want {
			t.Fatalf("segs[%d].Delta = %v, want %v", i, s.Delta, want)
		}
		if s.X1 != s.X2 {
			t.Fatalf("segs[%d] not vertical: %+v", i, s.Line)
		}
		if s.Color != p.Colormap().Map(want) {
			t.Fatalf("segs[%d].Color = %v", i, s.Color)
		}
	}

	if lo, hi := p.Colormap().VLim(); lo != 1 || hi != 4 {
		t.Fatalf("colormap VLim() = %v, %v; want 1, 4", lo, hi)
	}
}

func TestPitchRenderCarriesAxes(t *testing.T) {
	p, err := NewPitch(WithGrid(true))
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Overlay([]float64{0, 10}, []float64{100, 200}, []float64{0, 10}, []float64{150, 150}); err != nil {
		t.Fatal(err)
	}

	f, err := p.Render(Rect{W: 200, H: 100})
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Segments) != 2 || len(f.XTicks) == 0 || len(f.GridLines) != len(f.YTicks) {
		t.Fatalf("frame = %+v", f)
	}
}

func TestPitchRepeatedXPairsInOrder(t *testing.T) {
	p, err := NewPitch()
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Overlay([]float64{1, 1}, []float64{5, 6}, []float64{1}, []float64{2}); err != nil {
		t.Fatal(err)
	}
	if p.Shared() != 1 {
		t.Fatalf("Shared() = %d, want 1", p.Shared())
	}
}

func TestPitchErrors(t *testing.T) {
	p, err := NewPitch()
	if err != nil {
		t.Fatal(err)
	}

	if err := p.Overlay([]float64{0}, []float64{1}, []float64{2}, []float64{3}); !errors.Is(err, core.ErrNoData) {
		t.Fatalf("Overlay(disjoint) error = %v, want ErrNoData", err)
	}
	if err := p.Overlay([]float64{0, 1}, []float64{1}, nil, nil); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("Overlay(mismatch) error = %v", err)
	}
	if _, err := p.Segments(Rect{W: 1, H: 1}); !errors.Is(err, core.ErrNoData) {
		t.Fatalf("Segments() without data error = %v", err)
	}
}
