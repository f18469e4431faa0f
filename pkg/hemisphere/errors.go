package hemisphere

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the only failure kind of this package. It is
// returned, wrapped in a *ValidationError, when options fail validation.
var ErrInvalidArgument = errors.New("invalid argument")

// ValidationError describes a single rejected option.
type ValidationError struct {
	Field   string // option name, e.g. "slicePartitions"
	Message string // human-readable description
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: options.%s %s", ErrInvalidArgument, e.Field, e.Message)
}

// Unwrap lets errors.Is match ErrInvalidArgument.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidArgument
}
