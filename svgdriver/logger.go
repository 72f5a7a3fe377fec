package svgdriver

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler discarding all log records.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by the drivers.
// By default, nothing is logged. Pass nil to disable logging again.
//
// Log levels used:
//   - [slog.LevelDebug]: skipped shapes, split arcs, reused gradients, shortened texts
//   - [slog.LevelInfo]: template loading and document finalization
//   - [slog.LevelWarn]: text boxes which could not be fitted
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
