package window

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownType is returned for window names or types outside the
	// supported set.
	ErrUnknownType = errors.New("window: unknown type")

	errEmptyCoeffs      = errors.New("window: coefficients must not be empty")
	errZeroCoherentGain = errors.New("window: coherent gain is zero")
)

func validateLength(size int) error {
	if size <= 0 {
		return fmt.Errorf("window: size must be > 0: %d", size)
	}
	return nil
}

func validateType(t Type) error {
	if _, ok := metadataByType[t]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownType, int(t))
	}
	return nil
}
