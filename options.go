package gradsmooth

import "log/slog"

// Option configures a Smooth or SmoothPlane call.
// Use functional options to customize the run.
//
// Example:
//
//	// One pass, default parallelism
//	out, err := gradsmooth.Smooth(img, 3)
//
//	// Two passes on a single goroutine
//	out, err := gradsmooth.Smooth(img, 7, gradsmooth.WithPasses(2), gradsmooth.WithWorkers(1))
type Option func(*options)

// options holds the optional configuration of a call.
type options struct {
	passes  int
	workers int
	fields  *Fields
	logger  *slog.Logger
}

// defaultOptions returns the default call options.
func defaultOptions() options {
	return options{
		passes:  1,
		workers: 0, // GOMAXPROCS
	}
}

// WithPasses sets the number of sequential passes. Each pass after the first
// filters the previous pass's output with statistics derived from it.
// n must be at least 1; the default is 1.
func WithPasses(n int) Option {
	return func(o *options) {
		o.passes = n
	}
}

// WithWorkers sets the number of goroutines filtering row bands of each
// channel. 0 (the default) uses GOMAXPROCS. 1 runs everything, channels
// included, sequentially on the calling goroutine.
// Results do not depend on the worker count.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithFields supplies precomputed gradient data for the first pass.
// The fields are used by pass 1 only; later passes always recompute their
// statistics from the previous pass's output. Fields must match the image
// dimensions. SmoothPlane reads Channels[0].
func WithFields(f *Fields) Option {
	return func(o *options) {
		o.fields = f
	}
}

// WithLogger overrides the package logger (see SetLogger) for one call.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// log returns the logger for the call.
func (o *options) log() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return Logger()
}
