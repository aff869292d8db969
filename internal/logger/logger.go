// Package logger provides the structured logger shared by the solvers and the CLI.
package logger

import (
	"io"

	"go.uber.org/zap"
)

// Log levels accepted by New.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

// New returns a console logger writing entries at or above level to w.
// Unknown levels fall back to info.
func New(level string, w io.Writer) *Logger {
	return newZapLogger(level, w)
}

// Nop returns a logger that discards everything, for tests and library callers
// that did not supply one.
func Nop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}

// With returns a child logger carrying the given key/value pairs on every entry.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{SugaredLogger: l.SugaredLogger.With(args...)}
}
