package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-plot/dsp/signal"
)

var (
	errNotWAV      = errors.New("plotprep: not a valid wav file")
	errUnknownDemo = errors.New("plotprep: unknown demo signal")
)

// track is a mono series with its sample rate.
type track struct {
	samples    []float64
	sampleRate float64
}

func loadFile(path string) (track, error) {
	f, err := os.Open(path)
	if err != nil {
		return track{}, err
	}
	defer f.Close()

	return loadWAV(f)
}

// loadWAV decodes PCM data and mixes it to mono in [-1, 1].
func loadWAV(r io.ReadSeeker) (track, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return track{}, errNotWAV
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return track{}, fmt.Errorf("plotprep: decode: %w", err)
	}

	return mixdown(buf)
}

func mixdown(buf *audio.IntBuffer) (track, error) {
	if buf.Format == nil || buf.Format.NumChannels < 1 {
		return track{}, errNotWAV
	}
	if buf.SourceBitDepth < 8 || buf.SourceBitDepth > 32 {
		return track{}, fmt.Errorf("%w: %d-bit samples", errNotWAV, buf.SourceBitDepth)
	}

	fb := buf.AsFloatBuffer()
	channels := buf.Format.NumChannels
	frames := len(fb.Data) / channels

	offset := 0.0
	if buf.SourceBitDepth == 8 {
		// 8-bit PCM is unsigned.
		offset = 128
	}
	scale := 1 / (float64(int64(1)<<(buf.SourceBitDepth-1)) * float64(channels))

	out := make([]float64, frames)
	for i := range out {
		var sum float64
		for c := range channels {
			sum += fb.Data[i*channels+c] - offset
		}
		out[i] = sum * scale
	}

	return track{samples: out, sampleRate: float64(buf.Format.SampleRate)}, nil
}

// demoTrack generates one second of a named test signal at the default
// sample rate, or n samples when n is positive.
func demoTrack(name string, n int) (track, error) {
	gen := signal.NewGenerator(signal.WithSeed(1))
	if n <= 0 {
		n = int(gen.SampleRate())
	}

	var (
		samples []float64
		err     error
	)
	switch name {
	case "sine":
		samples, err = gen.Sine(5, 1, n)
	case "noise":
		samples, err = gen.WhiteNoise(1, n)
	case "ramp":
		samples, err = gen.Ramp(0, 1/float64(n), n)
	default:
		return track{}, fmt.Errorf("%w: %q", errUnknownDemo, name)
	}
	if err != nil {
		return track{}, err
	}

	return track{samples: samples, sampleRate: gen.SampleRate()}, nil
}
