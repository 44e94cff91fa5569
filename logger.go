package toolkit

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. slog consults Enabled before building a
// record, so a silent toolkit formats nothing.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr holds the process-wide logger read by the package-level
// operations and by Toolkits built without WithLogger.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger installs the logger shared by the package-level operations and
// hands it to the active BoxConvolver if that convolver accepts one. A nil
// logger silences toolkit again. It may be called while operations run.
//
// Records emitted:
//   - [slog.LevelDebug]: one trace per call with its size, vector size and
//     restricted area; resize also reports tap-table reuse
//   - [slog.LevelInfo]: RegisterBoxConvolver swapping convolvers
//   - [slog.LevelWarn]: a convolver error that sent Blur to the portable path
//
// To see everything on stderr:
//
//	toolkit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)

	if c := ActiveBoxConvolver(); c != nil {
		propagateLogger(c, l)
	}
}

// Logger returns the process-wide logger, never nil.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// loggerSetter is the optional hook a BoxConvolver implements to log its
// own diagnostics through the toolkit logger.
type loggerSetter interface {
	SetLogger(*slog.Logger)
}

func propagateLogger(c BoxConvolver, l *slog.Logger) {
	if ls, ok := c.(loggerSetter); ok {
		ls.SetLogger(l)
	}
}
