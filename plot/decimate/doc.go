// Package decimate reduces long series to a size that can be drawn in a
// single refresh.
//
// Two policies are provided. [PolicyMean] replaces every bucket of width
// consecutive samples by its average and smooths away spikes. [PolicyMinMax]
// keeps the smallest and the largest sample of every bucket, so the drawn
// envelope of the signal matches the undecimated one, which is what a
// waveform display needs.
//
// Inputs are never modified; every function returns freshly allocated
// output. A trailing partial bucket is aggregated over the samples that
// remain.
package decimate
