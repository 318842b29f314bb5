// Package log provides structured logging for build/prove/verify calls. It
// wraps Go's log/slog with one merkle-tree-specific convenience: every
// subsystem of this library reports on exactly one of three operations, so
// a logger is scoped by an Operation instead of an open-ended module name.
package log

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with this package's scoping convention.
type Logger struct {
	inner *slog.Logger
}

// Operation names the three things this library ever logs about. Scoping by
// Operation rather than a free-form subsystem string means every log line
// this package emits is filterable along the one axis that actually matters
// for a Merkle tree: which of build, prove, or verify produced it.
type Operation string

const (
	// OpBuild scopes logging for Build calls.
	OpBuild Operation = "build"
	// OpProve scopes logging for Prove and ProveFirstMatching calls.
	OpProve Operation = "prove"
	// OpVerify scopes logging for Verify calls.
	OpVerify Operation = "verify"
)

// defaultLogger is the process-wide logger used by the package-level
// convenience functions.
var defaultLogger *Logger

func init() {
	defaultLogger = New(slog.LevelInfo)
}

// New creates a Logger that writes JSON to stderr at the given level.
func New(level slog.Level) *Logger {
	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{inner: slog.New(h)}
}

// NewWithHandler creates a Logger backed by the supplied slog.Handler. This
// is useful for testing or for writing to a custom destination.
func NewWithHandler(h slog.Handler) *Logger {
	return &Logger{inner: slog.New(h)}
}

// SetDefault replaces the package-level default logger.
func SetDefault(l *Logger) {
	if l != nil {
		defaultLogger = l
	}
}

// Default returns the current package-level default logger.
func Default() *Logger {
	return defaultLogger
}

// Scope returns a child logger tagged with the tree operation it reports on.
// observe's instrumented Build/Prove/Verify wrappers each hold their own
// scoped logger instead of threading an "op" key through every call site.
func (l *Logger) Scope(op Operation) *Logger {
	return &Logger{inner: l.inner.With("op", string(op))}
}

// With returns a child logger with additional key-value context.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{inner: l.inner.With(args...)}
}

// Debug logs at LevelDebug.
func (l *Logger) Debug(msg string, args ...any) { l.inner.Debug(msg, args...) }

// Info logs at LevelInfo.
func (l *Logger) Info(msg string, args ...any) { l.inner.Info(msg, args...) }

// Warn logs at LevelWarn.
func (l *Logger) Warn(msg string, args ...any) { l.inner.Warn(msg, args...) }

// Error logs at LevelError.
func (l *Logger) Error(msg string, args ...any) { l.inner.Error(msg, args...) }

// ---------------------------------------------------------------------------
// Package-level convenience functions -- delegate to defaultLogger.
// ---------------------------------------------------------------------------

// Debug logs at LevelDebug using the default logger.
func Debug(msg string, args ...any) { defaultLogger.Debug(msg, args...) }

// Info logs at LevelInfo using the default logger.
func Info(msg string, args ...any) { defaultLogger.Info(msg, args...) }

// Warn logs at LevelWarn using the default logger.
func Warn(msg string, args ...any) { defaultLogger.Warn(msg, args...) }

// Error logs at LevelError using the default logger.
func Error(msg string, args ...any) { defaultLogger.Error(msg, args...) }
