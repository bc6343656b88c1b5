package testutil

import (
	"math"
	"math/rand"
)

// Ramp returns n samples start, start+step, start+2*step, ...
func Ramp(start, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates uniform noise in [-amplitude, amplitude)
// with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Spikes returns a zero series of the given length with single-sample
// transients of height amp at every position in at.
func Spikes(length int, amp float64, at ...int) []float64 {
	out := make([]float64, length)
	for _, pos := range at {
		if pos >= 0 && pos < length {
			out[pos] = amp
		}
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}
