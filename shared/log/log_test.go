package log_test

import (
	"context"
	"testing"

	"github.com/on-the-ground/oneliners_go/shared/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFromContext_DefaultsToNop(t *testing.T) {
	logger := log.FromContext(context.Background())
	require.NotNil(t, logger)
	// must not panic
	log.Log(context.Background(), log.LogError, "dropped", nil)
}

func TestLog_UsesContextLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := log.WithLogger(context.Background(), zap.New(core))

	log.Log(ctx, log.LogWarn, "careful", map[string]interface{}{"key": "value"})
	log.Log(ctx, log.LogDebug, "details", nil)
	log.Log(ctx, log.LogLevel("unknown"), "fallback", nil)

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "value", entries[0].ContextMap()["key"])
	assert.Equal(t, zapcore.DebugLevel, entries[1].Level)
	assert.Equal(t, zapcore.InfoLevel, entries[2].Level)
}

func TestWithLogger_NilKeepsContext(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, ctx, log.WithLogger(ctx, nil))
}

func TestWithTestLogger(t *testing.T) {
	ctx, teardown := log.WithTestLogger(context.Background())
	defer teardown()

	assert.NotNil(t, log.FromContext(ctx))
	log.Log(ctx, log.LogInfo, "hello from test logger", nil)
}
