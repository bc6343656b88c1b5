package frame

import "errors"

var (
	// ErrLengthMismatch is returned when coordinate slices differ in length.
	ErrLengthMismatch = errors.New("frame: length mismatch")
	// ErrEmptySurface is returned for rectangles without area.
	ErrEmptySurface = errors.New("frame: empty surface")
)
