// Package cache keeps recent market data payloads so repeated dashboard loads do not
// hit the analytics service every time.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"fintwin/config"
	"fintwin/internal/domain/lifecycle"
	"fintwin/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const marketDataKey = "fintwin:market_data"

// redisMarketDataCache stores the latest payload under a single key with a TTL.
type redisMarketDataCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// Get returns the cached payload. Redis errors are logged and treated as a miss.
func (c *redisMarketDataCache) Get(ctx context.Context) (json.RawMessage, bool) {
	payload, err := c.client.Get(ctx, marketDataKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("Market data cache read failed", slog.Any("error", err))
		}

		return nil, false
	}

	return json.RawMessage(payload), true
}

// Set stores payload for the configured TTL.
func (c *redisMarketDataCache) Set(ctx context.Context, payload json.RawMessage) {
	if err := c.client.Set(ctx, marketDataKey, []byte(payload), c.ttl).Err(); err != nil {
		c.logger.Warn("Market data cache write failed", slog.Any("error", err))
	}
}

func (c *redisMarketDataCache) Close() error {
	return errors.Wrap(c.client.Close(), "failed to close Redis client")
}

// noopMarketDataCache is used when Redis is not configured
type noopMarketDataCache struct{}

func (noopMarketDataCache) Get(context.Context) (json.RawMessage, bool) { return nil, false }

func (noopMarketDataCache) Set(context.Context, json.RawMessage) {}

func (noopMarketDataCache) Close() error { return nil }

// Params holds dependencies for the market data cache, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewMarketDataCache creates a Redis backed cache, or a no-op one when redis.addr is empty.
func NewMarketDataCache(params Params) service.MarketDataCache {
	cfg := params.Config.Redis
	logger := params.Logger

	if cfg == nil || cfg.Addr == "" {
		logger.Info("Redis not configured, market data is not cached")

		return noopMarketDataCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	cache := &redisMarketDataCache{
		client: client,
		ttl:    cfg.MarketDataTTL,
		logger: logger,
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			// The cache is optional; an unreachable Redis only costs cache misses.
			if err := client.Ping(ctx).Err(); err != nil {
				logger.Warn("Redis unreachable, market data cache will miss",
					slog.String("addr", cfg.Addr),
					slog.Any("error", err),
				)

				return nil
			}
			logger.Info("Connected to Redis", slog.String("addr", cfg.Addr), slog.Duration("ttl", cfg.MarketDataTTL))

			return nil
		},
		OnStop: func(_ context.Context) error {
			logger.Info("Closing market data cache")

			return cache.Close()
		},
	})

	return cache
}

// Module provides the cache FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewMarketDataCache),
)
