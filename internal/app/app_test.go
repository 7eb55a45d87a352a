package app

import (
	"context"
	"testing"
	"time"

	"github.com/ougirez/roadtrack/internal/pkg/config"
	"github.com/ougirez/roadtrack/internal/pkg/store/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenStoreMemory(t *testing.T) {
	st, closeStore, err := openStore(context.Background(), config.StoreConfig{Driver: "memory"})
	require.NoError(t, err)
	defer closeStore()

	assert.IsType(t, &memory.Store{}, st)
}

func TestRunStopsOnCancel(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Server.Addr = "127.0.0.1:0"
	cfg.Server.ShutdownTimeout = time.Second

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	assert.NoError(t, Run(ctx, cfg))
}
