// Package smooth applies windowed moving-average smoothing to a series.
//
// The input is extended at both ends by window_len-1 reflected samples,
// convolved with the window normalized to unit sum, and only the fully
// overlapping part of the convolution is kept. Edges are therefore not
// pulled towards zero and a constant input stays constant.
//
// # Output length
//
// The default [TrimFull] convention returns len(x)+window_len-1 samples,
// including half a window of reflected context on each side. [TrimSame]
// returns len(x) samples, where output i is centred on input i for odd
// window lengths.
//
// Windows shorter than three samples, and inputs shorter than the window,
// are returned unchanged.
package smooth
