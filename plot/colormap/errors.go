package colormap

import "errors"

var (
	// ErrNoAnchors is returned when fewer than two anchors are given.
	ErrNoAnchors = errors.New("colormap: need at least two anchors")
	// ErrAnchorOrder is returned for anchors that are not sorted, leave
	// [0, 1] or do not start at 0 and end at 1.
	ErrAnchorOrder = errors.New("colormap: anchors must run from 0 to 1 in order")
	// ErrUnknownColor is returned by Named for unknown colour names.
	ErrUnknownColor = errors.New("colormap: unknown color")
	// ErrUnknownPreset is returned by Preset for unknown preset names.
	ErrUnknownPreset = errors.New("colormap: unknown preset")
)
