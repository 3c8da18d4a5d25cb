// Package logging provides the diagnostic logger behind the --verbose flag.
// User-facing progress goes to stdout directly; this is for debugging runs
// against real repositories.
package logging

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	defaultLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
	loggerMu      sync.Mutex
)

// Initialize sets up the logger. With verbose false all output is discarded.
func Initialize(verbose bool) {
	loggerMu.Lock()
	defer loggerMu.Unlock()

	if !verbose {
		defaultLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
		return
	}

	defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

// Debug logs a message at debug level
func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

// Info logs a message at info level
func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

// Warn logs a message at warn level
func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}

// Error logs a message at error level
func Error(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
}
