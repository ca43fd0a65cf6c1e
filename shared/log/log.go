package log

import (
	"context"

	"go.uber.org/zap"
)

// LogLevel defines the severity level for log messages.
type LogLevel string

const (
	// LogInfo is used for general informational messages.
	LogInfo LogLevel = "info"

	// LogWarn is used for potentially harmful situations.
	LogWarn LogLevel = "warn"

	// LogError is used for error events that might still allow the application to continue running.
	LogError LogLevel = "error"

	// LogDebug is used for debugging messages with detailed internal information.
	LogDebug LogLevel = "debug"
)

type loggerKey struct{}

// WithLogger returns a context carrying the given zap logger.
// Helpers that log (the task runners) read it back with FromContext.
// A nil logger leaves the context untouched.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	if logger == nil {
		return ctx
	}
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger installed by WithLogger, or a no-op logger.
func FromContext(ctx context.Context) *zap.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*zap.Logger); ok {
		return logger
	}
	return zap.NewNop()
}

// Log emits a structured log line through the context logger.
func Log(ctx context.Context, level LogLevel, msg string, fields map[string]interface{}) {
	logger := FromContext(ctx)

	zapFields := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zapFields = append(zapFields, zap.Any(k, v))
	}

	switch level {
	case LogInfo:
		logger.Info(msg, zapFields...)
	case LogWarn:
		logger.Warn(msg, zapFields...)
	case LogError:
		logger.Error(msg, zapFields...)
	case LogDebug:
		logger.Debug(msg, zapFields...)
	default:
		logger.Info(msg, zapFields...)
	}
}
