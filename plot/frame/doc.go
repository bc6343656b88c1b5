// Package frame assembles the per-refresh drawing data of a live plot.
//
// A Plot receives a series, optionally smooths and decimates it, derives its
// data limits and projects the visible samples onto a pixel rectangle. The
// result is a Frame: pixel points plus labelled axis ticks and grid lines,
// ready for any 2-D backend.
//
// # Surfaces
//
//   - Plot: polyline, point or filled polygon series with axes.
//   - Pitch: two tracks joined by segments coloured by their distance.
//   - Gauge: a half-circle arc with labelled ticks.
//   - Legend: colour patches of a colormap stacked over a rectangle.
//
// Pixel space follows screen conventions: x grows to the right and y grows
// downwards, so the y projection is inverted.
//
// # Logging
//
// Plot and Pitch log through log/slog. They discard records unless a logger
// is passed with WithLogger.
package frame
