// Package conv provides linear convolution for smoothing kernels.
//
// Two strategies are offered:
//
//   - Direct convolution: O(N*M) time-domain accumulation, best for short kernels
//   - Overlap-add (OLA): FFT-based block convolution for long kernels
//
// # Usage
//
// For one-shot convolution, use the simple functions:
//
//	result, err := conv.Convolve(signal, kernel)               // Auto-selects the algorithm
//	result, err := conv.ConvolveMode(signal, kernel, ModeValid) // Fully overlapping part only
//
// For repeated convolution with the same kernel, create a reusable convolver:
//
//	c, err := conv.NewOverlapAdd(kernel, blockSize)
//	result, err := c.Process(signal)
//
// # Algorithm Selection
//
// [Convolve] uses direct convolution up to 64 kernel taps and overlap-add
// above. Smoothing windows of a few dozen samples therefore stay in the time
// domain, while wide kernels are convolved through the FFT.
package conv
