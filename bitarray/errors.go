package bitarray

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when a length, offset or bits source fails validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrOutOfBounds is returned when a bit offset is outside [0, length).
	ErrOutOfBounds = errors.New("offset out of bounds")
)

// OffsetError describes a bit offset that is not addressable.
type OffsetError struct {
	Offset int
	Length int
}

func (err *OffsetError) Error() string {
	return fmt.Sprintf("offset out of bounds; expected: [0, %d), given: %d", err.Length, err.Offset)
}

func (err *OffsetError) Unwrap() error {
	return ErrOutOfBounds
}

func invalidArgument(param string, format string, args ...interface{}) error {
	return fmt.Errorf("%w: `%s` %s", ErrInvalidArgument, param, fmt.Sprintf(format, args...))
}
