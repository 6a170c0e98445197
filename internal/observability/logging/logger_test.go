package logging

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weatherapp/internal/handler/http/requestid"
)

func TestNewLogger_DefaultLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")

	logger := NewLogger()
	require.NotNil(t, logger)

	assert.True(t, logger.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, logger.Enabled(context.Background(), slog.LevelDebug))
}

func TestNewLogger_DebugLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")

	logger := NewLogger()
	assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))
}

func TestWithRequestID(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	t.Run("no request ID in context", func(t *testing.T) {
		got := WithRequestID(context.Background(), logger)
		assert.Same(t, logger, got, "logger unchanged without a request ID")
	})

	t.Run("request ID present", func(t *testing.T) {
		ctx := requestid.WithRequestID(context.Background(), "req-123")
		got := WithRequestID(ctx, logger)
		assert.NotSame(t, logger, got)
	})
}

func TestLoggerContext(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx))

	// Falls back to the default logger when none is stored.
	assert.Same(t, slog.Default(), FromContext(context.Background()))
}
