package persistence

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/spacemeshos/bitbyte/config"
)

type option struct {
	logger    *zap.Logger
	maxLength uint64
}

func (o *option) validate() error {
	if o.logger == nil {
		return errors.New("`logger` is required")
	}
	if o.maxLength == 0 {
		return errors.New("`maxLength` must be greater than 0")
	}
	return nil
}

// OptionFunc configures Save and Load.
type OptionFunc func(*option) error

// WithLogger sets the logger Save and Load report to.
func WithLogger(logger *zap.Logger) OptionFunc {
	return func(o *option) error {
		if logger == nil {
			return errors.New("`logger` must not be nil")
		}
		o.logger = logger
		return nil
	}
}

// WithMaxLength limits the number of bits of saved and loaded arrays.
func WithMaxLength(maxLength uint64) OptionFunc {
	return func(o *option) error {
		if maxLength > config.MaxMaxLength {
			return fmt.Errorf("invalid `maxLength`; expected: <= %d, given: %d", uint64(config.MaxMaxLength), maxLength)
		}
		o.maxLength = maxLength
		return nil
	}
}

func newOptions(opts []OptionFunc) (*option, error) {
	o := &option{
		logger:    zap.NewNop(),
		maxLength: config.DefaultMaxLength,
	}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	return o, nil
}
