package labgrid

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with labgrid-specific helpers.
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
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithAxis adds an axis field to the logger.
func (l *Logger) WithAxis(ax int) *Logger {
	return &Logger{
		Logger: l.Logger.With("axis", ax),
	}
}

// WithRank adds a rank field to the logger.
func (l *Logger) WithRank(rank int) *Logger {
	return &Logger{
		Logger: l.Logger.With("rank", rank),
	}
}

// LogConstruct logs an array construction.
func (l *Logger) LogConstruct(rank int, err error) {
	if err != nil {
		l.Error("construct failed",
			"rank", rank,
			"error", err,
		)
	} else {
		l.Debug("construct completed",
			"rank", rank,
		)
	}
}

// LogSelect logs a label selection.
func (l *Logger) LogSelect(kept int, err error) {
	if err != nil {
		l.Error("select failed",
			"kept", kept,
			"error", err,
		)
	} else {
		l.Debug("select completed",
			"kept", kept,
		)
	}
}

// LogReduce logs an axis reduction.
func (l *Logger) LogReduce(ax int, err error) {
	if err != nil {
		l.Error("reduce failed",
			"axis", ax,
			"error", err,
		)
	} else {
		l.Debug("reduce completed",
			"axis", ax,
		)
	}
}

// LogRearrange logs an axis rearrangement.
func (l *Logger) LogRearrange(err error) {
	if err != nil {
		l.Error("rearrange failed",
			"error", err,
		)
	} else {
		l.Debug("rearrange completed")
	}
}
