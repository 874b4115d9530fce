package analytics

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"fintwin/config"
	"fintwin/internal/domain/entity"
	domainerrors "fintwin/internal/domain/errors"
	"fintwin/internal/domain/service"
	logs "fintwin/internal/infra/log"
	"fintwin/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, breaker config.BreakerConfig) (*Client, *metrics.Metrics) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	m := metrics.New()
	client := NewClient(config.AnalyticsConfig{
		BaseURL: server.URL,
		Timeout: 200 * time.Millisecond,
		Breaker: breaker,
	}, m, slog.New(slog.DiscardHandler))

	return client, m
}

func TestClassifier_Classify(t *testing.T) {
	var received service.ClassificationSummary
	var requestID string

	client, m := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, pathClassifyUser, r.URL.Path)
		requestID = r.Header.Get(headerRequestID)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		_, _ = io.WriteString(w, `{"user_class":"Saver"}`)
	}, config.BreakerConfig{})

	summary := service.ClassificationSummary{
		Income:      50000,
		Spending:    20000,
		Investments: entity.Investments{Gold: 1000},
		IsInvestor:  entity.InvestorYes,
	}
	ctx := logs.WithRequestID(context.Background(), "req-42")

	outcome := NewClassifier(client).Classify(ctx, summary)

	require.True(t, outcome.OK())
	assert.Equal(t, entity.UserClassSaver, outcome.Value())
	assert.Equal(t, summary, received)
	assert.Equal(t, "req-42", requestID)
	assert.InDelta(t, 1, testutil.ToFloat64(m.UpstreamRequests.WithLabelValues(service.UpstreamClassifier, metrics.ResultSuccess, "")), 0)
}

func TestClassifier_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		reason domainerrors.FailureReason
	}{
		{name: "bad status", status: http.StatusInternalServerError, body: `{"detail":"boom"}`, reason: domainerrors.FailureBadStatus},
		{name: "not json", status: http.StatusOK, body: `<html>`, reason: domainerrors.FailureMalformed},
		{name: "missing label", status: http.StatusOK, body: `{"class":"Saver"}`, reason: domainerrors.FailureMalformed},
		{name: "unknown label", status: http.StatusOK, body: `{"user_class":"Whale"}`, reason: domainerrors.FailureMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}, config.BreakerConfig{})

			outcome := NewClassifier(client).Classify(context.Background(), service.ClassificationSummary{})

			require.False(t, outcome.OK())
			assert.Equal(t, tt.reason, outcome.Failure().Reason)
			assert.Equal(t, service.UpstreamClassifier, outcome.Failure().Service)
		})
	}
}

func TestClient_Timeout(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}, config.BreakerConfig{})

	outcome := NewClassifier(client).Classify(context.Background(), service.ClassificationSummary{})

	require.False(t, outcome.OK())
	assert.Equal(t, domainerrors.FailureTimeout, outcome.Failure().Reason)
}

func TestClient_TransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	client := NewClient(config.AnalyticsConfig{BaseURL: baseURL, Timeout: time.Second}, nil, slog.New(slog.DiscardHandler))
	outcome := NewSimulator(client).Simulate(context.Background(), nil)

	require.False(t, outcome.OK())
	assert.Equal(t, domainerrors.FailureTransport, outcome.Failure().Reason)
}

func TestClient_BreakerOpensWithoutRetrying(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}, config.BreakerConfig{ConsecutiveFailures: 2, OpenTimeout: time.Minute})

	signal := NewMarketSignal(client, nil, nil)
	for range 2 {
		outcome := signal.Alert(context.Background())
		require.False(t, outcome.OK())
		assert.Equal(t, domainerrors.FailureBadStatus, outcome.Failure().Reason)
		assert.Equal(t, http.StatusBadGateway, outcome.Failure().StatusCode)
	}

	outcome := signal.Alert(context.Background())
	require.False(t, outcome.OK())
	assert.Equal(t, domainerrors.FailureCircuitOpen, outcome.Failure().Reason)
	assert.Equal(t, int32(2), calls.Load())

	// Other endpoints keep their own breaker.
	assert.False(t, signal.Data(context.Background()).OK())
	assert.Equal(t, int32(3), calls.Load())
}

func TestCostEstimator_Estimate(t *testing.T) {
	var received map[string]any
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, pathPredictCostOfLiving, r.URL.Path)
		received = nil
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		_, _ = io.WriteString(w, `{"estimated_cost":26500.5,"currency":"INR"}`)
	}, config.BreakerConfig{})

	estimator := NewCostEstimator(client, config.CostOfLivingConfig{
		DefaultCityTier:  "Tier-1",
		PlaceholderState: "Unknown",
	})

	outcome := estimator.Estimate(context.Background(), service.CostOfLivingQuery{})

	require.True(t, outcome.OK())
	assert.InDelta(t, 26500.5, outcome.Value().EstimatedCost, 0)
	assert.JSONEq(t, `{"estimated_cost":26500.5,"currency":"INR"}`, string(outcome.Value().Raw))
	assert.Equal(t, map[string]any{"state": "Unknown", "city_tier": "Tier-1"}, received)

	outcome = estimator.Estimate(context.Background(), service.CostOfLivingQuery{Pincode: "560001", CityTier: "Tier-2"})
	require.True(t, outcome.OK())
	assert.Equal(t, map[string]any{"state": "Unknown", "city_tier": "Tier-2", "pincode": "560001"}, received)
}

func TestCostEstimator_MissingEstimateIsMalformed(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"estimated_cost":"a lot"}`)
	}, config.BreakerConfig{})

	outcome := NewCostEstimator(client, config.CostOfLivingConfig{}).Estimate(context.Background(), service.CostOfLivingQuery{})

	require.False(t, outcome.OK())
	assert.Equal(t, domainerrors.FailureMalformed, outcome.Failure().Reason)
}

type fakeCache struct {
	mu      sync.Mutex
	payload json.RawMessage
}

func (c *fakeCache) Get(context.Context) (json.RawMessage, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.payload, c.payload != nil
}

func (c *fakeCache) Set(_ context.Context, payload json.RawMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.payload = payload
}

func (c *fakeCache) Close() error { return nil }

func TestMarketSignal_DataIsCached(t *testing.T) {
	var calls atomic.Int32
	client, m := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, pathMarketData, r.URL.Path)
		calls.Add(1)
		_, _ = io.WriteString(w, `{"nifty":{"price":22000,"change":0.5}}`)
	}, config.BreakerConfig{})

	signal := NewMarketSignal(client, &fakeCache{}, m)

	first := signal.Data(context.Background())
	second := signal.Data(context.Background())

	require.True(t, first.OK())
	require.True(t, second.OK())
	assert.JSONEq(t, string(first.Value()), string(second.Value()))
	assert.Equal(t, int32(1), calls.Load())
	assert.InDelta(t, 1, testutil.ToFloat64(m.MarketDataCacheHits.WithLabelValues("hit")), 0)
}

func TestSimulator_ForwardsBodyVerbatim(t *testing.T) {
	var received string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		received = string(body)
		_, _ = io.WriteString(w, `[{"month":1,"value":1000}]`)
	}, config.BreakerConfig{})

	outcome := NewSimulator(client).Simulate(context.Background(), json.RawMessage(`{"monthly_investment":5000,"years":10}`))

	require.True(t, outcome.OK())
	assert.JSONEq(t, `{"monthly_investment":5000,"years":10}`, received)
	assert.JSONEq(t, `[{"month":1,"value":1000}]`, string(outcome.Value()))
}
