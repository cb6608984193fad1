// SPDX-License-Identifier: MIT

package difference

import (
	"io"
	"log/slog"
)

// DefaultName prefixes every error returned by a SecondDerivative.
const DefaultName = "second_derivative"

// Option customises a SecondDerivative at construction.
type Option func(*options)

type options struct {
	name    string
	workers int
	logger  *slog.Logger
}

func gatherOptions(opts ...Option) options {
	o := options{
		name:    DefaultName,
		workers: 1,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithName sets the name used in errors and log records. Empty keeps the default.
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithWorkers splits the rows of the interior among n goroutines.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("difference: WithWorkers(n<1)")
	}

	return func(o *options) { o.workers = n }
}

// WithLogger routes debug records to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("difference: WithLogger(nil)")
	}

	return func(o *options) { o.logger = l }
}
