package window

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBartlett
	TypeBlackman
)

// Metadata holds spectral properties of a window type.
type Metadata struct {
	Name                string
	ENBW                float64
	HighestSidelobe     float64
	CoherentGain        float64
	CoherentGainSquared float64
}

var (
	hannCoeffs     = []float64{0.5, -0.5}
	hammingCoeffs  = []float64{0.54, -0.46}
	blackmanCoeffs = []float64{0.42, -0.5, 0.08}
)

var metadataByType = map[Type]Metadata{
	TypeRectangular: {Name: "Rectangular", ENBW: 1, HighestSidelobe: -13.3, CoherentGain: 1, CoherentGainSquared: 1},
	TypeHann:        {Name: "Hann", ENBW: 1.5, HighestSidelobe: -31.5, CoherentGain: 0.5, CoherentGainSquared: 0.25},
	TypeHamming:     {Name: "Hamming", ENBW: 1.363, HighestSidelobe: -42.7, CoherentGain: 0.54, CoherentGainSquared: 0.2916},
	TypeBartlett:    {Name: "Bartlett", ENBW: 1.333, HighestSidelobe: -26.5, CoherentGain: 0.5, CoherentGainSquared: 0.25},
	TypeBlackman:    {Name: "Blackman", ENBW: 1.727, HighestSidelobe: -58.1, CoherentGain: 0.42, CoherentGainSquared: 0.1764},
}

// names lists the smoothing-kernel spelling of every type, in Type order.
var names = []string{"flat", "hanning", "hamming", "bartlett", "blackman"}

var aliases = map[string]Type{
	"flat":        TypeRectangular,
	"rectangular": TypeRectangular,
	"boxcar":      TypeRectangular,
	"hanning":     TypeHann,
	"hann":        TypeHann,
	"hamming":     TypeHamming,
	"bartlett":    TypeBartlett,
	"triangle":    TypeBartlett,
	"blackman":    TypeBlackman,
}

// String returns the kernel name of t ("flat", "hanning", ...).
func (t Type) String() string {
	if t < 0 || int(t) >= len(names) {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return names[t]
}

// ParseType resolves a window name. Matching is case-insensitive.
func ParseType(name string) (Type, error) {
	if t, ok := aliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return t, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownType, name)
}

// Names returns the kernel names accepted by ParseType, one per type.
func Names() []string {
	return append([]string(nil), names...)
}

// Valid reports whether t is a supported window type.
func (t Type) Valid() bool {
	return validateType(t) == nil
}

// Option configures window generation.
type Option func(*config)

type config struct {
	periodic bool
}

func defaultConfig() config {
	return config{}
}

// WithPeriodic configures periodic form (FFT framing) instead of symmetric form.
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

// Generate returns window coefficients of the given length. The symmetric
// form matches numpy's hanning, hamming, bartlett and blackman; a window of
// length one is [1]. Unknown types and non-positive lengths yield nil.
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 || !t.Valid() {
		return nil
	}

	cfg := defaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	out := make([]float64, length)
	if length == 1 {
		out[0] = 1
		return out
	}

	for i := range out {
		out[i] = evalWindow(t, samplePosition(i, length, cfg.periodic))
	}

	return out
}

// Apply multiplies buf in-place by the selected window.
func Apply(t Type, buf []float64, opts ...Option) {
	if len(buf) == 0 {
		return
	}

	coeffs := Generate(t, len(buf), opts...)
	if len(coeffs) != len(buf) {
		return
	}

	vecmath.MulBlockInPlace(buf, coeffs)
}

// Info returns static metadata for a window type.
func Info(t Type) Metadata {
	if m, ok := metadataByType[t]; ok {
		return m
	}

	return Metadata{}
}

// New returns window coefficients, reporting invalid sizes and types.
func New(t Type, size int, opts ...Option) ([]float64, error) {
	if err := validateType(t); err != nil {
		return nil, err
	}
	if err := validateLength(size); err != nil {
		return nil, err
	}

	return Generate(t, size, opts...), nil
}

// EquivalentNoiseBandwidth returns the ENBW in bins for a window.
func EquivalentNoiseBandwidth(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	sum := vecmath.Sum(coeffs)
	if sum == 0 {
		return 0, errZeroCoherentGain
	}

	return float64(len(coeffs)) * vecmath.DotProduct(coeffs, coeffs) / (sum * sum), nil
}

func evalWindow(t Type, x float64) float64 {
	switch t {
	case TypeHann:
		return cosineFromCoeffs(x, hannCoeffs)
	case TypeHamming:
		return cosineFromCoeffs(x, hammingCoeffs)
	case TypeBartlett:
		return 1 - math.Abs(2*x-1)
	case TypeBlackman:
		return cosineFromCoeffs(x, blackmanCoeffs)
	default:
		return 1
	}
}

func cosineFromCoeffs(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}

	return sum
}

func samplePosition(n, size int, periodic bool) float64 {
	if size <= 1 {
		return 0
	}

	den := float64(size - 1)
	if periodic {
		den = float64(size)
	}

	return float64(n) / den
}
