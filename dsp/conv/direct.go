package conv

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-plot/internal/scratch"
)

// simdThreshold is the shortest kernel for which the inner loop is handed
// to the block routines.
const simdThreshold = 4

// Direct performs direct time-domain linear convolution of a and b.
// Returns a new slice of length len(a) + len(b) - 1.
func Direct(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	result := make([]float64, len(a)+len(b)-1)
	if err := DirectTo(result, a, b); err != nil {
		return nil, err
	}

	return result, nil
}

// DirectTo performs direct convolution into dst, which must have length
// len(a) + len(b) - 1.
func DirectTo(dst, a, b []float64) error {
	if len(a) == 0 {
		return ErrEmptyInput
	}
	if len(b) == 0 {
		return ErrEmptyKernel
	}
	if want := len(a) + len(b) - 1; len(dst) != want {
		return fmt.Errorf("%w: expected %d, got %d", ErrLengthMismatch, want, len(dst))
	}

	clear(dst)

	if len(b) >= simdThreshold {
		directBlock(dst, a, b)
	} else {
		directScalar(dst, a, b)
	}

	return nil
}

func directScalar(dst, a, b []float64) {
	for i, av := range a {
		for j, bv := range b {
			dst[i+j] += av * bv
		}
	}
}

// directBlock accumulates dst[i:i+m] += b * a[i] with the vector routines.
func directBlock(dst, a, b []float64) {
	m := len(b)
	buf := scratch.Get(m)
	defer scratch.Put(buf)

	temp := buf.Samples()
	for i, av := range a {
		vecmath.ScaleBlock(temp, b, av)
		vecmath.AddBlockInPlace(dst[i:i+m], temp)
	}
}
