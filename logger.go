package vecstore

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with vecstore-specific helpers.
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
	handler := slog.NewTextHandler(io.Discard, nil)
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithKeyspace adds a keyspace field to the logger.
func (l *Logger) WithKeyspace(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("keyspace", name),
	}
}

// WithStore adds a store field to the logger.
func (l *Logger) WithStore(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("store", name),
	}
}

// LogAdd logs a vector insert operation.
func (l *Logger) LogAdd(keyspace string, index int, err error) {
	if err != nil {
		l.Error("add failed",
			"keyspace", keyspace,
			"error", err,
		)
	} else {
		l.Debug("add completed",
			"keyspace", keyspace,
			"index", index,
		)
	}
}

// LogBatchAdd logs a batch insert operation.
func (l *Logger) LogBatchAdd(keyspace string, count int, err error) {
	if err != nil {
		l.Warn("batch add rejected",
			"keyspace", keyspace,
			"count", count,
			"error", err,
		)
	} else {
		l.Info("batch add completed",
			"keyspace", keyspace,
			"count", count,
		)
	}
}

// LogRemove logs a vector removal.
func (l *Logger) LogRemove(keyspace string, index int, err error) {
	if err != nil {
		l.Error("remove failed",
			"keyspace", keyspace,
			"index", index,
			"error", err,
		)
	} else {
		l.Debug("remove completed",
			"keyspace", keyspace,
			"index", index,
		)
	}
}

// LogSearch logs a search operation.
func (l *Logger) LogSearch(keyspace, kind string, resultsFound int, err error) {
	if err != nil {
		l.Error("search failed",
			"keyspace", keyspace,
			"kind", kind,
			"error", err,
		)
	} else {
		l.Debug("search completed",
			"keyspace", keyspace,
			"kind", kind,
			"results", resultsFound,
		)
	}
}

// LogKeyspaceEvent logs a keyspace lifecycle event (created, registered,
// removed). These events are the diagnostics hook for keyspace lifetime.
func (l *Logger) LogKeyspaceEvent(event, keyspace string, dimension int) {
	l.Info(event,
		"keyspace", keyspace,
		"dimension", dimension,
	)
}
