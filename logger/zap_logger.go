package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger implements the [Logger] interface over a sugared zap logger.
// zap has no trace level, so Trace records are written at debug level
// when the logger level is LevelTrace and dropped otherwise.
type ZapLogger struct {
	sugar *zap.SugaredLogger
	trace bool
}

var _ Logger = (*ZapLogger)(nil)

// NewZapLogger returns a new [ZapLogger] wrapping logger.
// A nil logger is replaced with zap.NewNop().
func NewZapLogger(logger *zap.Logger, level Level) *ZapLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapLogger{
		sugar: logger.WithOptions(zap.AddCallerSkip(1)).Sugar(),
		trace: level <= LevelTrace,
	}
}

// NewZapDevelopment builds a console zap logger with the given minimum level.
func NewZapDevelopment(level Level) (*ZapLogger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel(level))
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return NewZapLogger(logger, level), nil
}

// Trace logs at the trace level.
func (l *ZapLogger) Trace(msg string, args ...any) {
	if l.trace {
		l.sugar.Debugw(msg, args...)
	}
}

// Debug logs at the debug level.
func (l *ZapLogger) Debug(msg string, args ...any) {
	l.sugar.Debugw(msg, args...)
}

// Info logs at the info level.
func (l *ZapLogger) Info(msg string, args ...any) {
	l.sugar.Infow(msg, args...)
}

// Warn logs at the warn level.
func (l *ZapLogger) Warn(msg string, args ...any) {
	l.sugar.Warnw(msg, args...)
}

// Error logs at the error level.
func (l *ZapLogger) Error(msg string, args ...any) {
	l.sugar.Errorw(msg, args...)
}

// Sync flushes any buffered log entries.
func (l *ZapLogger) Sync() error {
	return l.sugar.Sync()
}

func zapLevel(level Level) zapcore.Level {
	switch {
	case level <= LevelDebug:
		return zapcore.DebugLevel
	case level <= LevelInfo:
		return zapcore.InfoLevel
	case level <= LevelWarn:
		return zapcore.WarnLevel
	case level <= LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.FatalLevel
	}
}
