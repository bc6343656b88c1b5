package conv

import "errors"

// Errors returned by convolution functions.
var (
	ErrEmptyInput     = errors.New("conv: empty input")
	ErrEmptyKernel    = errors.New("conv: empty kernel")
	ErrLengthMismatch = errors.New("conv: buffer length mismatch")
)

// DirectThreshold is the longest kernel Convolve handles in the time domain.
const DirectThreshold = 64

// Mode specifies the output mode for convolution.
type Mode int

const (
	// ModeFull returns the full convolution result with length len(a)+len(b)-1.
	ModeFull Mode = iota

	// ModeSame returns output with the same length as the first input.
	ModeSame

	// ModeValid returns only the portion where signals fully overlap,
	// with length max(len(a), len(b)) - min(len(a), len(b)) + 1.
	ModeValid
)

func (m Mode) String() string {
	switch m {
	case ModeFull:
		return "full"
	case ModeSame:
		return "same"
	case ModeValid:
		return "valid"
	default:
		return "unknown"
	}
}

// OutputLen returns the length ConvolveMode produces for inputs of length
// lenA and lenB.
func OutputLen(lenA, lenB int, mode Mode) int {
	if lenA <= 0 || lenB <= 0 {
		return 0
	}

	switch mode {
	case ModeSame:
		return lenA
	case ModeValid:
		return max(lenA, lenB) - min(lenA, lenB) + 1
	default:
		return lenA + lenB - 1
	}
}

// Convolve performs linear convolution with automatic algorithm selection:
// direct for kernels up to DirectThreshold taps, overlap-add above.
func Convolve(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	if len(b) > len(a) {
		a, b = b, a
	}

	if len(b) <= DirectThreshold {
		return Direct(a, b)
	}

	return OverlapAddConvolve(a, b)
}

// ConvolveMode performs convolution with the specified output mode.
func ConvolveMode(a, b []float64, mode Mode) ([]float64, error) {
	full, err := Convolve(a, b)
	if err != nil {
		return nil, err
	}

	return trimToMode(full, len(a), len(b), mode), nil
}

// trimToMode extracts the appropriate portion of a full convolution result.
func trimToMode(full []float64, lenA, lenB int, mode Mode) []float64 {
	switch mode {
	case ModeSame:
		start := (lenB - 1) / 2
		return full[start : start+lenA]
	case ModeValid:
		if lenA >= lenB {
			return full[lenB-1 : lenA]
		}
		return full[lenA-1 : lenB]
	default:
		return full
	}
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
