package smooth

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-plot/dsp/conv"
	"github.com/cwbudde/algo-plot/dsp/window"
	"github.com/cwbudde/algo-plot/internal/scratch"
	"github.com/cwbudde/algo-plot/plot/core"
)

// MinWindowLen is the shortest window that changes the input.
const MinWindowLen = 3

// Trim selects how much of the reflected padding the output keeps.
type Trim int

const (
	// TrimFull keeps len(x)+window_len-1 samples.
	TrimFull Trim = iota
	// TrimSame keeps len(x) samples aligned with the input.
	TrimSame
)

func (t Trim) String() string {
	switch t {
	case TrimFull:
		return "full"
	case TrimSame:
		return "same"
	default:
		return "unknown"
	}
}

// Option configures a Smoother.
type Option func(*config)

type config struct {
	trim Trim
}

func defaultConfig() config {
	return config{trim: TrimFull}
}

// WithTrim selects the output length convention.
func WithTrim(t Trim) Option {
	return func(c *config) {
		if t == TrimFull || t == TrimSame {
			c.trim = t
		}
	}
}

// Smoother convolves series with a fixed normalized window. The kernel is
// built once; Process may be called repeatedly.
type Smoother struct {
	windowLen int
	kind      window.Type
	kernel    []float64
	cfg       config
}

// New returns a Smoother for windows of windowLen samples of the given
// kind. An unsupported kind yields window.ErrUnknownType.
func New(windowLen int, kind window.Type, opts ...Option) (*Smoother, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("smooth: %w: %d", window.ErrUnknownType, int(kind))
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	s := &Smoother{windowLen: windowLen, kind: kind, cfg: cfg}
	if windowLen >= MinWindowLen {
		s.kernel = window.Generate(kind, windowLen)
		sum := vecmath.Sum(s.kernel)
		vecmath.ScaleBlockInPlace(s.kernel, 1/sum)
	}

	return s, nil
}

// WindowLen returns the window length.
func (s *Smoother) WindowLen() int { return s.windowLen }

// Kind returns the window type.
func (s *Smoother) Kind() window.Type { return s.kind }

// Kernel returns a copy of the normalized kernel, nil when the window is
// too short to smooth.
func (s *Smoother) Kernel() []float64 {
	if s.kernel == nil {
		return nil
	}
	return append([]float64(nil), s.kernel...)
}

// OutputLen returns the number of samples Process returns for n inputs.
func (s *Smoother) OutputLen(n int) int {
	if n <= 0 {
		return 0
	}
	if s.kernel == nil || n < s.windowLen || s.cfg.trim == TrimSame {
		return n
	}
	return n + s.windowLen - 1
}

// Process smooths x into a new slice. Empty input yields core.ErrNoData.
func (s *Smoother) Process(x []float64) ([]float64, error) {
	if len(x) == 0 {
		return nil, core.ErrNoData
	}

	if s.kernel == nil || len(x) < s.windowLen {
		return append([]float64(nil), x...), nil
	}

	w := s.windowLen
	buf := scratch.Get(len(x) + 2*(w-1))
	defer scratch.Put(buf)

	padded := buf.Samples()
	reflect(padded, x, w)

	full, err := conv.ConvolveMode(padded, s.kernel, conv.ModeValid)
	if err != nil {
		return nil, fmt.Errorf("smooth: %w", err)
	}

	if s.cfg.trim == TrimSame {
		off := (w - 1) / 2
		full = full[off : off+len(x) : off+len(x)]
	}

	return full, nil
}

// reflect writes x[w-1], ..., x[1], x, x[n-1], ..., x[n-w+1] into dst,
// which must hold len(x)+2*(w-1) samples.
func reflect(dst, x []float64, w int) {
	n := len(x)
	for i := 0; i < w-1; i++ {
		dst[i] = x[w-1-i]
	}
	copy(dst[w-1:], x)
	for i := 0; i < w-1; i++ {
		dst[w-1+n+i] = x[n-1-i]
	}
}

// Smooth is a one-shot form of New(windowLen, kind, opts...).Process(x).
func Smooth(x []float64, windowLen int, kind window.Type, opts ...Option) ([]float64, error) {
	s, err := New(windowLen, kind, opts...)
	if err != nil {
		return nil, err
	}
	return s.Process(x)
}

// SmoothNamed is Smooth with the window given by name ("flat", "hanning",
// "hamming", "bartlett" or "blackman").
func SmoothNamed(x []float64, windowLen int, name string, opts ...Option) ([]float64, error) {
	kind, err := window.ParseType(name)
	if err != nil {
		return nil, fmt.Errorf("smooth: %w", err)
	}
	return Smooth(x, windowLen, kind, opts...)
}
