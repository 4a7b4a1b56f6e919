package zoom

import "errors"

var (
	// ErrDegenerateInput is returned when a bitmap or viewport dimension is
	// not a positive finite number.
	ErrDegenerateInput = errors.New("zoom: degenerate dimensions")

	// ErrInvalidBounds is returned when the configured minimum zoom exceeds
	// the maximum, or a bound is not a positive finite number.
	ErrInvalidBounds = errors.New("zoom: invalid scale bounds")
)
