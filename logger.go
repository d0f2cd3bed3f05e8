package arenalist

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with consistent field names for sequence
// operations.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, a text handler to stderr at Info level is used.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger that writes human-readable text to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewJSONLogger creates a Logger that writes JSON to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.DiscardHandler)}
}

// LogAppend logs a single append outcome.
func (l *Logger) LogAppend(err error) {
	if err != nil {
		l.Error("append failed", "error", err)
		return
	}
	l.Debug("append completed")
}

// LogAppendBatch logs a batch append outcome.
func (l *Logger) LogAppendBatch(count int, err error) {
	if err != nil {
		l.Error("batch append failed", "count", count, "error", err)
		return
	}
	l.Debug("batch append completed", "count", count)
}

// LogSnapshot logs a snapshot write outcome.
func (l *Logger) LogSnapshot(count int, err error) {
	if err != nil {
		l.Error("snapshot failed", "count", count, "error", err)
		return
	}
	l.Info("snapshot written", "count", count)
}

// LogRestore logs a snapshot restore outcome.
func (l *Logger) LogRestore(count int, err error) {
	if err != nil {
		l.Error("restore failed", "error", err)
		return
	}
	l.Info("restore completed", "count", count)
}
