package bitkit

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with bitkit-specific context.
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
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
// Sets use it when no logger is configured.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// WithName adds a name field to the logger (useful for telling sets apart).
func (l *Logger) WithName(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("name", name),
	}
}

// LogGrow logs a storage resize.
func (l *Logger) LogGrow(ctx context.Context, fromBits, toBits int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "bitset grow failed",
			"from_bits", fromBits,
			"to_bits", toBits,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "bitset grown",
			"from_bits", fromBits,
			"to_bits", toBits,
		)
	}
}

// LogFree logs release of a set's storage.
func (l *Logger) LogFree(ctx context.Context, bits int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "bitset free failed",
			"bits", bits,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "bitset freed",
			"bits", bits,
		)
	}
}

// LogValidation logs the outcome of a board validation.
func (l *Logger) LogValidation(ctx context.Context, board, conflicts int, err error) {
	switch {
	case err != nil:
		l.ErrorContext(ctx, "validation failed",
			"board", board,
			"error", err,
		)
	case conflicts > 0:
		l.WarnContext(ctx, "validation found conflicts",
			"board", board,
			"conflicts", conflicts,
		)
	default:
		l.DebugContext(ctx, "validation passed",
			"board", board,
		)
	}
}
