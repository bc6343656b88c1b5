package decimate

import "errors"

var (
	// ErrUnknownPolicy is returned by ParsePolicy for unsupported names.
	ErrUnknownPolicy = errors.New("decimate: unknown policy")
	// ErrLengthMismatch is returned when x and y slices differ in length.
	ErrLengthMismatch = errors.New("decimate: x and y length mismatch")
)
