// SPDX-License-Identifier: MIT
// Package: multires/wavelet
//
// options.go: functional options for New.
//
// Contract:
//   • Option constructors validate and panic on meaningless values
//     (programmer error). The transform itself never panics.
//   • Later options override earlier ones.
//   • Defaults are deterministic: sequential execution, silent logger.

package wavelet

import (
	"io"
	"log/slog"
)

// Defaults (single source of truth).
const (
	// DefaultName prefixes every error returned by a Transform.
	DefaultName = "harten"

	// DefaultWorkers runs every stencil pass on the calling goroutine.
	DefaultWorkers = 1
)

// Option customises a Transform at construction.
type Option func(*options)

// options is the resolved configuration.
type options struct {
	name    string
	workers int
	logger  *slog.Logger
}

// defaultOptions returns the documented defaults.
func defaultOptions() options {
	return options{
		name:    DefaultName,
		workers: DefaultWorkers,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// gatherOptions applies opts in order over the defaults.
func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithName sets the object name used to prefix errors and log records.
// An empty name keeps the default.
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithWorkers sets how many goroutines share the rows of one stencil pass.
// Levels always run in order; only cells within a pass are split.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("wavelet: WithWorkers(n<1)")
	}

	return func(o *options) {
		o.workers = n
	}
}

// WithLogger routes debug records (construction, calls, level passes) to l.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("wavelet: WithLogger(nil)")
	}

	return func(o *options) {
		o.logger = l
	}
}
