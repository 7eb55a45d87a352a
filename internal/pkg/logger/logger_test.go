package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestInit(t *testing.T) {
	require.NoError(t, Init("debug", "json"))
	require.NoError(t, Init("INFO", "console"))
	assert.Error(t, Init("loud", "json"))
}

func TestWithFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	Set(zap.New(core))
	t.Cleanup(func() { Set(zap.NewNop()) })

	ctx := WithFields(context.Background(), "request_id", "abc")
	Infof(ctx, "created road %d", 7)
	Errorf(context.Background(), "boom")

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	assert.Equal(t, "created road 7", entries[0].Message)
	assert.Equal(t, "abc", entries[0].ContextMap()["request_id"])
	assert.Empty(t, entries[1].ContextMap())
	assert.Equal(t, zap.ErrorLevel, entries[1].Level)
}
