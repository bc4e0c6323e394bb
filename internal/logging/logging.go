// Package logging provides structured diagnostics for stylescan.
//
// Events on stdout are machine-readable NDJSON; everything meant for a human
// (warnings about unreadable files, verbose progress) goes through this
// package to stderr so the two streams never interleave.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Logger is the global logger instance.
var Logger *slog.Logger

func init() {
	Logger = newLogger(os.Stderr, slog.LevelInfo)
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// SetLevel rebuilds the global logger at the given level.
func SetLevel(level slog.Level) {
	Logger = newLogger(os.Stderr, level)
}

// Info logs an info message.
func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

// Error logs an error message.
func Error(msg string, args ...any) {
	Logger.Error(msg, args...)
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

// With returns a logger with additional attributes.
func With(args ...any) *slog.Logger {
	return Logger.With(args...)
}
