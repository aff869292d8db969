package logger

import (
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap's SugaredLogger.
type Logger struct {
	*zap.SugaredLogger
}

const defaultZapLevel = zapcore.InfoLevel

func toZapLevel(levelStr string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case DebugLevel:
		return zapcore.DebugLevel
	case WarnLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return defaultZapLevel
	}
}

// newConsoleCore builds a console-encoded core; rendered results go to stdout, so logs
// are expected on a separate writer.
func newConsoleCore(level zapcore.Level, w io.Writer) zapcore.Core {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.NameKey = "logger"

	return zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg),
		zapcore.Lock(zapcore.AddSync(w)),
		zap.NewAtomicLevelAt(level),
	)
}

func newZapLogger(levelStr string, w io.Writer) *Logger {
	core := newConsoleCore(toZapLevel(levelStr), w)
	return &Logger{
		SugaredLogger: zap.New(core).Named("pizza").Sugar(),
	}
}
