// Package memory implements the stores over process memory. Each store owns
// one lock and holds it across the whole of every check-then-act operation.
package memory

import "time"

type options struct {
	now func() time.Time
}

type Option func(*options)

// WithClock sets the clock used to stamp CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
