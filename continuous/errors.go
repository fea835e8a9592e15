package continuous

import (
	"errors"
	"fmt"
)

// Sentinel errors (no dynamic payload); match with errors.Is.
var (
	// ErrTimeRegression is returned in strict mode when t < last time.
	ErrTimeRegression = errors.New("continuous: time went backwards")

	// ErrZeroTimeStep is returned when a derivative is requested at the last time.
	ErrZeroTimeStep = errors.New("continuous: zero time step")

	// ErrNilInput indicates a nil container input.
	ErrNilInput = errors.New("continuous: nil input")
)

func continuousErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
