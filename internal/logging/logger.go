// Package logging defines the structured-logging interface used across
// bankcli. Implementations wrap log/slog (default) or logrus.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "request completed", "method", "GET", "status", 200)
type Logger interface {
	// Debug logs diagnostic details that are off by default.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a warning message for unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs an error message for failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}

const (
	BackendSlog   = "slog"
	BackendLogrus = "logrus"
)

// ParseLevel maps a textual level to slog.Level. Unknown values yield Info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New builds a Logger for the given backend writing to w.
func New(backend, level string, w io.Writer) (Logger, error) {
	switch backend {
	case "", BackendSlog:
		h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})
		return NewSlogLogger(slog.New(h)), nil
	case BackendLogrus:
		return NewLogrusLogger(w, level), nil
	default:
		return nil, fmt.Errorf("unknown log backend %q", backend)
	}
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
