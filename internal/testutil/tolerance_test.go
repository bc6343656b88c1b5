package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	ramp := Ramp(0, 0.25, 5)

	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"identical", ramp, ramp, 0},
		{"dc offset", ramp, Ramp(0.5, 0.25, 5), 0.5},
		{"single spike", DC(0, 8), Spikes(8, -3, 5), 3},
		{"empty", nil, []float64{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := MaxAbsDiff(tt.a, tt.b)
			if err != nil {
				t.Fatalf("MaxAbsDiff: %v", err)
			}
			if math.Abs(d-tt.want) > 1e-15 {
				t.Fatalf("MaxAbsDiff = %v, want %v", d, tt.want)
			}
		})
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	if _, err := MaxAbsDiff(Ramp(0, 1, 3), Ramp(0, 1, 4)); err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestRequireWithinSine(t *testing.T) {
	s := DeterministicSine(50, 1000, 0.8, 256)

	RequireFinite(t, s)
	RequireWithin(t, s, -0.8, 0.8, 1e-12)
	RequireSliceNearlyEqual(t, s, DeterministicSine(50, 1000, 0.8, 256), 0)
}
