package toolkit

import "log/slog"

// Option configures a Toolkit during creation.
//
// Example:
//
//	// Process-wide convolver and logger
//	tk := toolkit.New()
//
//	// Always use the portable blur and a private logger
//	tk := toolkit.New(
//	    toolkit.WithBoxConvolver(toolkit.PortableBoxConvolver()),
//	    toolkit.WithLogger(logger),
//	)
type Option func(*options)

type options struct {
	convolver BoxConvolver
	logger    *slog.Logger
}

// WithBoxConvolver makes the Toolkit blur with c instead of the
// process-wide convolver set by RegisterBoxConvolver.
func WithBoxConvolver(c BoxConvolver) Option {
	return func(o *options) {
		o.convolver = c
	}
}

// WithLogger makes the Toolkit log to l instead of the package logger
// set by SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
