package utils

import (
	"io"
	"log/slog"
	"os"
	"time"
)

const appName = "go-life"

// NewLogger creates the application logger on w (normally Stderr, keeping Stdout for frames and prompts)
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return newLogger(w, level)
}

// newLogger tags every record with the app name, renames "error" to "err"
// and rounds durations (advance timings, runtime) to microseconds.
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			if a.Value.Kind() == slog.KindDuration {
				a.Value = slog.DurationValue(a.Value.Duration().Round(time.Microsecond))
			}
			return a
		},
	})
	return slog.New(handler).With(slog.String("app", appName))
}

// NewNopLogger returns a logger that discards everything
func NewNopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
