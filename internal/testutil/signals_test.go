package testutil

import (
	"math"
	"testing"
)

func TestRamp(t *testing.T) {
	r := Ramp(10, 0.5, 5)
	want := []float64{10, 10.5, 11, 11.5, 12}
	RequireSliceNearlyEqual(t, r, want, 0)
}

func TestDeterministicSineReproducible(t *testing.T) {
	a := DeterministicSine(440, 44100, 0.5, 100)
	b := DeterministicSine(440, 44100, 0.5, 100)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic at index %d", i)
		}
	}
	if math.Abs(a[0]) > 1e-15 {
		t.Fatalf("a[0] = %v, want 0", a[0])
	}
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	RequireSliceNearlyEqual(t, a, b, 0)
	RequireWithin(t, a, -1, 1, 0)
}

func TestSpikes(t *testing.T) {
	s := Spikes(8, 3, 1, 6, 42)
	want := []float64{0, 3, 0, 0, 0, 0, 3, 0}
	RequireSliceNearlyEqual(t, s, want, 0)
}

func TestDC(t *testing.T) {
	d := DC(-2, 4)
	RequireSliceNearlyEqual(t, d, []float64{-2, -2, -2, -2}, 0)
}
