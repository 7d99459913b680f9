package log

import (
	"go.uber.org/zap/zapcore"
)

func DefaultLogger() Logger {
	return globalLogger
}

func SetLevel(lvl zapcore.Level) {
	globalLoggerLevel.SetLevel(lvl)
}

// SetLevelSelector configures the global threshold from a
// verbose-level selector string, see ParseLevel.
func SetLevelSelector(selector string) {
	SetLevel(ParseLevel(selector))
}

func Info(msg string, fields ...Field) {
	globalLogger.Info(msg, fields...)
}
func (l *logger) Info(msg string, fields ...Field) {
	l.logger.Info(msg, fields...)
}

func Warn(msg string, fields ...Field) {
	globalLogger.Warn(msg, fields...)
}
func (l *logger) Warn(msg string, fields ...Field) {
	l.logger.Warn(msg, fields...)
}

func Error(msg string, fields ...Field) {
	globalLogger.Error(msg, fields...)
}
func (l *logger) Error(msg string, fields ...Field) {
	l.logger.Error(msg, fields...)
}

func Print(msg string) {
	globalLogger.Print(msg)
}

func (l *logger) Level() Level {
	return l.level.Level()
}

func Sync() {
	globalLogger.Sync()
}
func (l *logger) Sync() {
	_ = l.logger.Sync()
}
