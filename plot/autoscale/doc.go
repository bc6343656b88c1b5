// Package autoscale picks human-readable axis ticks for a data interval.
//
// An [AutoScaler] turns a data interval into a [Scale]: a start, a stop and
// a positive "nice" increment drawn from {1, 2, 5} x 10^k. With snapping
// enabled (the default) start and stop are multiples of the increment that
// enclose the data, so the ticks cover the whole visible range.
//
// # Labels
//
// Tick labels share one exponent. Inside the configured no-exponent window
// (by default 10^-3 .. 10^2) labels are written in plain decimal form; outside
// it the exponent is a multiple of the exponent factor (3 by default, the
// engineering convention) and appended as an "e<exp>" suffix.
//
// # Logarithmic axes
//
// [AutoScaler.LogTicks] returns decade-based ticks for positive intervals,
// used for spectra and other log-scaled plots.
package autoscale
