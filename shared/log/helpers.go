package log

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// WithTestLogger installs a development console logger writing to stdout.
// The returned teardown syncs the logger.
func WithTestLogger(
	ctx context.Context,
) (context.Context, func()) {
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stdout),
		zap.DebugLevel,
	)
	logger := zap.New(consoleCore)
	return WithLogger(ctx, logger), func() {
		// stdout sync fails on some platforms; nothing to recover
		_ = logger.Sync()
	}
}
