// Package signal generates deterministic test and demo series.
package signal

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-vecmath"
)

// DefaultSampleRate is the sample rate of a Generator without
// WithSampleRate.
const DefaultSampleRate = 48000

var (
	ErrInvalidLength     = errors.New("signal: length must be > 0")
	ErrInvalidSampleRate = errors.New("signal: sample rate must be > 0")
	ErrInvalidAmplitude  = errors.New("signal: amplitude must be >= 0")
	ErrEmptyInput        = errors.New("signal: empty input")
)

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	sampleRate float64
	seed       int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSampleRate sets the sample rate in Hz. Non-positive values are
// ignored.
func WithSampleRate(hz float64) Option {
	return func(g *Generator) {
		if hz > 0 {
			g.sampleRate = hz
		}
	}
}

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{sampleRate: DefaultSampleRate, seed: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// SampleRate returns the configured sample rate in Hz.
func (g *Generator) SampleRate() float64 {
	return g.sampleRate
}

// Times returns the sample instants 0, 1/fs, 2/fs, ... of n samples.
func (g *Generator) Times(samples int) ([]float64, error) {
	return g.Ramp(0, 1/g.sampleRate, samples)
}

// Sine generates a sine wave.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, samples)
	}
	if g.sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %f", ErrInvalidSampleRate, g.sampleRate)
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
// Every call restarts from the generator seed.
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("%w: %f", ErrInvalidAmplitude, amplitude)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// Ramp returns start, start+step, ... with the given number of samples.
func (g *Generator) Ramp(start, step float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, samples)
	}
	out := make([]float64, samples)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out, nil
}

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("%w: %f", ErrInvalidAmplitude, targetPeak)
	}
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	out := make([]float64, len(data))
	peak := vecmath.MaxAbs(data)
	if peak == 0 || targetPeak == 0 {
		return out, nil
	}

	vecmath.ScaleBlock(out, data, targetPeak/peak)
	return out, nil
}
