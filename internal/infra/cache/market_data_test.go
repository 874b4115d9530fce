package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"fintwin/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNewMarketDataCache_WithoutRedisIsNoop(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	cache := NewMarketDataCache(Params{
		Lc:     lc,
		Config: &config.Config{},
		Logger: slog.New(slog.DiscardHandler),
	})

	cache.Set(context.Background(), json.RawMessage(`{"nifty":1}`))
	_, ok := cache.Get(context.Background())

	assert.False(t, ok)
	require.NoError(t, cache.Close())
}

func TestNewMarketDataCache_WithRedisRegistersHooks(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	cache := NewMarketDataCache(Params{
		Lc:     lc,
		Config: &config.Config{Redis: &config.RedisConfig{Addr: "127.0.0.1:0"}},
		Logger: slog.New(slog.DiscardHandler),
	})

	_, isRedis := cache.(*redisMarketDataCache)
	assert.True(t, isRedis)

	// An unreachable Redis must not block startup.
	lc.RequireStart().RequireStop()
}
