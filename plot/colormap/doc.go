// Package colormap maps scalar values onto colours.
//
// An [Interpolated] colormap blends linearly between anchor colours placed
// at normalized positions in [0, 1]. Values are first projected from the
// value limits (vmin, vmax) onto [0, 1] with clipping, so out-of-range and
// NaN values take the colour of an end anchor and never extrapolate.
//
// A [Tabulated] colormap trades resolution for speed: it samples the
// interpolated map at n+1 evenly spaced values once, whenever the limits or
// anchors change, and answers lookups with an index into that table.
//
// # Palettes
//
// [Named] resolves colour names of the Tango palette plus the primaries,
// [EvenAnchors] spreads colours evenly over [0, 1] and [Preset] returns
// ready-made anchor sets.
package colormap
