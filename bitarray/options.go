package bitarray

import (
	"errors"

	"go.uber.org/zap"
)

type option struct {
	logger *zap.Logger
}

func (o *option) validate() error {
	if o.logger == nil {
		return errors.New("`logger` is required")
	}
	return nil
}

// OptionFunc configures the construction functions of this package.
type OptionFunc func(*option) error

// WithLogger sets the logger used by the array and the construction functions.
func WithLogger(logger *zap.Logger) OptionFunc {
	return func(o *option) error {
		if logger == nil {
			return errors.New("`logger` must not be nil")
		}
		o.logger = logger
		return nil
	}
}

func newOptions(opts []OptionFunc) (*option, error) {
	o := &option{
		logger: zap.NewNop(),
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
