package observability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFromContext(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-1")
	ctx = WithUserID(ctx, "u-1")

	FromContext(ctx).Info("hello")
	FromContext(context.Background()).Info("bare")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, map[string]any{"request_id": "req-1", "user_id": "u-1"}, entries[0].ContextMap())
	assert.Empty(t, entries[1].ContextMap())
}

func TestNewLoggerLevels(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	logger, err := NewLogger("production", "warn")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
	assert.Same(t, logger, Logger)

	logger, err = NewLogger("development", "not-a-level")
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestInitTracingDisabled(t *testing.T) {
	shutdown, err := InitTracing(TracingConfig{ServiceName: "syahi-test"})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}
