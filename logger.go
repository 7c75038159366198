package floatc

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with floatc-specific helpers.
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
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithContainer tags the logger with a container kind ("vector", "dict", ...).
func (l *Logger) WithContainer(kind string) *Logger {
	return &Logger{
		Logger: l.Logger.With("container", kind),
	}
}

// LogGrow logs a capacity change of a dynamic vector.
func (l *Logger) LogGrow(ctx context.Context, from, to int, err error) {
	if err != nil {
		l.WarnContext(ctx, "grow failed",
			"from", from,
			"to", to,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "grow completed",
			"from", from,
			"to", to,
		)
	}
}

// LogTrim logs a capacity shrink of a dynamic vector.
func (l *Logger) LogTrim(ctx context.Context, from, to int, err error) {
	if err != nil {
		l.WarnContext(ctx, "trim failed",
			"from", from,
			"to", to,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "trim completed",
			"from", from,
			"to", to,
		)
	}
}

// LogRehash logs a hash table resize.
func (l *Logger) LogRehash(ctx context.Context, from, to, entries int, err error) {
	if err != nil {
		l.WarnContext(ctx, "rehash skipped",
			"buckets", from,
			"target", to,
			"entries", entries,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "rehash completed",
			"from", from,
			"to", to,
			"entries", entries,
		)
	}
}

// LogAllocFailure logs a refused memory reservation.
func (l *Logger) LogAllocFailure(ctx context.Context, op string, bytes int64) {
	l.WarnContext(ctx, "allocation refused",
		"op", op,
		"bytes", bytes,
	)
}
