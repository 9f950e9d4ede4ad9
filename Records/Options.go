package Records

import "go.uber.org/zap"

// DefaultCapacity of bounded containers.
const DefaultCapacity = 5

// Options shared by the bounded containers.
type Options struct {
	Capacity int
	Logger   *zap.Logger
}

type Option func(*Options)

// WithCapacity fixes the capacity of a bounded container. It can't be changed
// after construction.
func WithCapacity(c int) Option {
	return func(o *Options) {
		o.Capacity = c
	}
}

// WithLogger sets the logger used for eviction and rejection events. A nil
// logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Apply resolves opts over the defaults. It returns a CapacityError if the
// resulting capacity is below 1.
func Apply(opts ...Option) (Options, error) {
	o := Options{Capacity: DefaultCapacity, Logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Capacity < 1 {
		return o, &CapacityError{o.Capacity}
	}
	return o, nil
}

// MustApply is Apply but panics on an invalid capacity. Constructors use it,
// as a bad capacity is a programming error.
func MustApply(opts ...Option) Options {
	o, err := Apply(opts...)
	if err != nil {
		panic(err)
	}
	return o
}
