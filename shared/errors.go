package shared

import (
	"errors"
	"fmt"
)

var (
	ErrArrayNotExist = errors.New("array doesn't exist")
	ErrInvalidName   = errors.New("invalid array name")
)

type NotEnoughSpaceError struct {
	Required  uint64
	Available uint64
	DataDir   string
}

func (err NotEnoughSpaceError) Error() string {
	return fmt.Sprintf("not enough disk space; required: %v, available: %v, datadir: %v",
		err.Required, err.Available, err.DataDir)
}
