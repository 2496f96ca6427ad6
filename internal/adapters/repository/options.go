package repository

import (
	"time"

	"github.com/google/uuid"
)

// Option applies a configuration option to a Collection.
type Option func(*options)

type options struct {
	clock   func() time.Time
	version func() string
}

func defaultOptions() options {
	return options{
		clock:   time.Now,
		version: func() string { return uuid.NewString() },
	}
}

// WithClock overrides the clock used to stamp snapshots.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithVersioner overrides how snapshot versions are generated.
func WithVersioner(next func() string) Option {
	return func(o *options) {
		if next != nil {
			o.version = next
		}
	}
}
