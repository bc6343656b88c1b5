package conv

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// minBlockSize is the smallest automatically chosen input block.
const minBlockSize = 256

// OverlapAdd implements FFT-based convolution using the overlap-add method.
// Input is cut into blocks of BlockSize samples; every block is convolved
// with the kernel through the FFT and the partial results are summed at
// their offsets.
//
// An OverlapAdd owns scratch buffers and is not safe for concurrent use.
type OverlapAdd struct {
	kernelFFT []complex128
	kernelLen int
	blockSize int
	fftSize   int

	plan *algofft.Plan[complex128]

	work []complex128
}

// NewOverlapAdd creates a new overlap-add convolver for the given kernel.
// If blockSize is 0, a size is chosen from the kernel length.
func NewOverlapAdd(kernel []float64, blockSize int) (*OverlapAdd, error) {
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}

	if blockSize <= 0 {
		blockSize = max(nextPowerOf2(len(kernel)), minBlockSize)
	}

	fftSize := nextPowerOf2(blockSize + len(kernel) - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	oa := &OverlapAdd{
		kernelFFT: make([]complex128, fftSize),
		kernelLen: len(kernel),
		blockSize: blockSize,
		fftSize:   fftSize,
		plan:      plan,
		work:      make([]complex128, fftSize),
	}

	for i, v := range kernel {
		oa.work[i] = complex(v, 0)
	}

	if err := plan.Forward(oa.kernelFFT, oa.work); err != nil {
		return nil, fmt.Errorf("conv: failed to compute kernel FFT: %w", err)
	}

	return oa, nil
}

// BlockSize returns the input block size.
func (oa *OverlapAdd) BlockSize() int {
	return oa.blockSize
}

// FFTSize returns the FFT size used internally.
func (oa *OverlapAdd) FFTSize() int {
	return oa.fftSize
}

// KernelLen returns the kernel length.
func (oa *OverlapAdd) KernelLen() int {
	return oa.kernelLen
}

// Process returns the full linear convolution of input with the kernel.
func (oa *OverlapAdd) Process(input []float64) ([]float64, error) {
	if len(input) == 0 {
		return nil, ErrEmptyInput
	}

	output := make([]float64, len(input)+oa.kernelLen-1)
	if err := oa.ProcessTo(output, input); err != nil {
		return nil, err
	}

	return output, nil
}

// ProcessTo convolves input into output, which must have length
// len(input) + KernelLen() - 1.
func (oa *OverlapAdd) ProcessTo(output, input []float64) error {
	if len(input) == 0 {
		return ErrEmptyInput
	}
	if want := len(input) + oa.kernelLen - 1; len(output) != want {
		return fmt.Errorf("%w: expected %d, got %d", ErrLengthMismatch, want, len(output))
	}

	clear(output)

	for start := 0; start < len(input); start += oa.blockSize {
		end := min(start+oa.blockSize, len(input))

		clear(oa.work)
		for i, v := range input[start:end] {
			oa.work[i] = complex(v, 0)
		}

		if err := oa.plan.Forward(oa.work, oa.work); err != nil {
			return fmt.Errorf("conv: forward FFT failed: %w", err)
		}

		for i := range oa.work {
			oa.work[i] *= oa.kernelFFT[i]
		}

		if err := oa.plan.Inverse(oa.work, oa.work); err != nil {
			return fmt.Errorf("conv: inverse FFT failed: %w", err)
		}

		n := min(end-start+oa.kernelLen-1, len(output)-start)
		for i := 0; i < n; i++ {
			output[start+i] += real(oa.work[i])
		}
	}

	return nil
}

// OverlapAddConvolve performs one-shot overlap-add convolution.
func OverlapAddConvolve(signal, kernel []float64) ([]float64, error) {
	oa, err := NewOverlapAdd(kernel, 0)
	if err != nil {
		return nil, err
	}
	return oa.Process(signal)
}
