// Package logging carries a leveled charmbracelet/log logger through
// context.Context. Logs go to stderr and never mix with the console output
// produced for the host.
package logging

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// New creates a logger writing to w. Debug enables debug-level messages;
// otherwise only warnings and errors are shown.
func New(w io.Writer, debug bool) *log.Logger {
	level := log.WarnLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: debug,
		TimeFormat:      "15:04:05.00",
		Prefix:          "npmhandler",
		Level:           level,
	})
}

type ctxKey int

const loggerKey ctxKey = 0

// WithLogger returns a context carrying l.
func WithLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext returns the logger stored in ctx, or a discarding logger when
// none is attached so callers never need a nil check.
func FromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return discard
}

var discard = log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
