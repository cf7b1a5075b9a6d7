package dptx

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with dptx-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithSubtype adds the datapoint type id to the logger.
func (l *Logger) WithSubtype(id string) *Logger {
	return &Logger{
		Logger: l.Logger.With("dpt", id),
	}
}

// LogTranslate logs one translator operation. Failures are logged at debug
// level since they are returned to the caller as well.
func (l *Logger) LogTranslate(ctx context.Context, op Op, items int, err error) {
	if err != nil {
		l.DebugContext(ctx, "translation failed",
			"op", op.String(),
			"items", items,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "translation completed",
		"op", op.String(),
		"items", items,
	)
}

// LogRegister logs the registration of catalog subtypes.
func (l *Logger) LogRegister(ctx context.Context, source string, count int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "catalog registration failed",
			"source", source,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "catalog registered",
			"source", source,
			"count", count,
		)
	}
}
