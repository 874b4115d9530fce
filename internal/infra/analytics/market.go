package analytics

import (
	"context"
	"encoding/json"
	"net/http"

	"fintwin/internal/domain/service"
	"fintwin/internal/infra/metrics"
)

const (
	pathMarketAlert = "/market_alert"
	pathMarketData  = "/market_data"
)

type marketSignal struct {
	client  *Client
	cache   service.MarketDataCache
	metrics *metrics.Metrics
}

// NewMarketSignal creates the market client. Successful market data payloads are
// kept in cache and served from it while fresh.
func NewMarketSignal(client *Client, cache service.MarketDataCache, m *metrics.Metrics) service.MarketSignal {
	return &marketSignal{
		client:  client,
		cache:   cache,
		metrics: m,
	}
}

// Alert posts an empty query and passes the answer through.
func (s *marketSignal) Alert(ctx context.Context) service.Outcome[json.RawMessage] {
	body, upstreamErr := s.client.call(ctx, service.UpstreamMarketAlert, http.MethodPost, pathMarketAlert, struct{}{})
	if upstreamErr != nil {
		return service.Failed[json.RawMessage](upstreamErr)
	}

	return service.Succeeded(body)
}

// Data returns the cached payload when present, otherwise fetches and caches it.
func (s *marketSignal) Data(ctx context.Context) service.Outcome[json.RawMessage] {
	if s.cache != nil {
		if payload, ok := s.cache.Get(ctx); ok {
			s.observeCache("hit")

			return service.Succeeded(payload)
		}
		s.observeCache("miss")
	}

	body, upstreamErr := s.client.call(ctx, service.UpstreamMarketData, http.MethodGet, pathMarketData, nil)
	if upstreamErr != nil {
		return service.Failed[json.RawMessage](upstreamErr)
	}

	if s.cache != nil {
		s.cache.Set(ctx, body)
	}

	return service.Succeeded(body)
}

func (s *marketSignal) observeCache(result string) {
	if s.metrics != nil {
		s.metrics.MarketDataCacheHits.WithLabelValues(result).Inc()
	}
}
