package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestFromContext(t *testing.T) {
	t.Run("returns logger stored in ctx", func(t *testing.T) {
		core, logs := observer.New(zap.InfoLevel)
		lg := zap.New(core).Sugar()
		ctx := NewContext(context.Background(), lg)

		FromContext(ctx).Infow("hello", "basket", 3)

		entries := logs.All()
		require.Len(t, entries, 1)
		require.Equal(t, "hello", entries[0].Message)
		require.Equal(t, int64(3), entries[0].ContextMap()["basket"])
	})

	t.Run("falls back to global logger", func(t *testing.T) {
		require.NotNil(t, FromContext(context.Background()))
	})
}

func TestNew(t *testing.T) {
	t.Setenv(envVar, "dev")
	require.NotNil(t, New())

	t.Setenv(envVar, "prod")
	require.NotNil(t, New())

	t.Run("level override", func(t *testing.T) {
		t.Setenv(levelEnvVar, "warn")
		lg := New()
		require.False(t, lg.Desugar().Core().Enabled(zap.InfoLevel))
		require.True(t, lg.Desugar().Core().Enabled(zap.WarnLevel))
	})

	t.Run("invalid level", func(t *testing.T) {
		t.Setenv(levelEnvVar, "loud")
		require.Panics(t, func() { New() })
	})
}
