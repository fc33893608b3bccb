// Package logging provides the diagnostics side channel: structured
// warnings and verbose output, kept separate from the record stream.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger wraps slog with scan-scoped helpers.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a logger writing to stderr at the given level.
// Unrecognized levels fall back to "warn" so diagnostics stay quiet unless
// asked for.
func NewLogger(level string) *Logger {
	return NewLoggerTo(os.Stderr, level)
}

// NewLoggerTo creates a logger writing to w at the given level.
func NewLoggerTo(w io.Writer, level string) *Logger {
	var logLevel slog.Level

	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn", "warning":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelWarn
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	})

	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithRoot returns a logger that tags every message with the scan root.
func (l *Logger) WithRoot(root string) *Logger {
	return &Logger{
		Logger: l.With(slog.String("root", root)),
	}
}
