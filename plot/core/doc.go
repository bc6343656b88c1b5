// Package core holds the small numeric vocabulary shared by the plot
// packages: the normalized [Interval], clamping, tolerant float comparison
// and the [ErrNoData] sentinel returned for empty series.
package core
