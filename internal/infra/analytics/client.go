// Package analytics talks to the external analytics service: classifier, cost-of-living
// estimator, market signal and wealth simulation. Every call is a single attempt
// bounded by the configured timeout and guarded by a per-endpoint circuit breaker.
package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"fintwin/config"
	domainerrors "fintwin/internal/domain/errors"
	"fintwin/internal/domain/service"
	logs "fintwin/internal/infra/log"
	"fintwin/internal/infra/metrics"

	"github.com/pkg/errors"
	"github.com/sony/gobreaker"
)

const (
	maxResponseBodySize = 1 << 20 // 1MB
	headerRequestID     = "X-Request-Id"
	contentTypeJSON     = "application/json"
)

var upstreams = []string{
	service.UpstreamClassifier,
	service.UpstreamCostOfLiving,
	service.UpstreamMarketAlert,
	service.UpstreamMarketData,
	service.UpstreamSimulation,
}

// Client is the shared HTTP transport for all analytics endpoints.
type Client struct {
	baseURL    string
	httpClient *http.Client
	breakers   map[string]*gobreaker.CircuitBreaker
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

// NewClient creates the transport with one breaker per upstream endpoint.
func NewClient(cfg config.AnalyticsConfig, m *metrics.Metrics, logger *slog.Logger) *Client {
	c := &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		breakers: make(map[string]*gobreaker.CircuitBreaker, len(upstreams)),
		metrics:  m,
		logger:   logger,
	}

	for _, name := range upstreams {
		c.breakers[name] = gobreaker.NewCircuitBreaker(c.breakerSettings(name, cfg.Breaker))
		if m != nil {
			m.BreakerState.WithLabelValues(name).Set(float64(gobreaker.StateClosed))
		}
	}

	return c
}

func (c *Client) breakerSettings(name string, cfg config.BreakerConfig) gobreaker.Settings {
	threshold := cfg.ConsecutiveFailures

	return gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return threshold > 0 && counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.logger.Warn("Analytics circuit breaker state change",
				slog.String("upstream", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
			if c.metrics != nil {
				c.metrics.BreakerState.WithLabelValues(name).Set(float64(to))
			}
		},
	}
}

// call performs one request against path and returns the raw response body. A body
// that is not valid JSON counts as malformed.
func (c *Client) call(ctx context.Context, upstream, method, path string, payload any) (json.RawMessage, *domainerrors.UpstreamError) {
	start := time.Now()
	body, upstreamErr := c.execute(ctx, upstream, method, path, payload)
	if upstreamErr == nil && !json.Valid(body) {
		upstreamErr = domainerrors.NewUpstreamError(upstream, domainerrors.FailureMalformed, errors.New("response body is not valid JSON"))
	}
	c.observe(ctx, upstream, upstreamErr, time.Since(start))

	return body, upstreamErr
}

func (c *Client) execute(ctx context.Context, upstream, method, path string, payload any) (json.RawMessage, *domainerrors.UpstreamError) {
	breaker, ok := c.breakers[upstream]
	if !ok {
		return nil, domainerrors.NewUpstreamError(upstream, domainerrors.FailureTransport, errors.Errorf("unknown upstream %q", upstream))
	}

	result, err := breaker.Execute(func() (interface{}, error) {
		return c.roundTrip(ctx, upstream, method, path, payload)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, domainerrors.NewUpstreamError(upstream, domainerrors.FailureCircuitOpen, err)
		}

		var upstreamErr *domainerrors.UpstreamError
		if errors.As(err, &upstreamErr) {
			return nil, upstreamErr
		}

		return nil, domainerrors.ClassifyTransportError(upstream, err)
	}

	body, _ := result.(json.RawMessage)

	return body, nil
}

func (c *Client) roundTrip(ctx context.Context, upstream, method, path string, payload any) (json.RawMessage, error) {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := encodePayload(payload)
		if err != nil {
			return nil, domainerrors.NewUpstreamError(upstream, domainerrors.FailureTransport, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, domainerrors.NewUpstreamError(upstream, domainerrors.FailureTransport, errors.Wrap(err, "failed to build request"))
	}
	req.Header.Set("Accept", contentTypeJSON)
	if reqBody != nil {
		req.Header.Set("Content-Type", contentTypeJSON)
	}
	if requestID := logs.RequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(headerRequestID, requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domainerrors.ClassifyTransportError(upstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return nil, domainerrors.ClassifyTransportError(upstream, errors.Wrap(err, "failed to read response body"))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		upstreamErr := domainerrors.NewUpstreamError(upstream, domainerrors.FailureBadStatus, errors.Errorf("unexpected status %d", resp.StatusCode))
		upstreamErr.StatusCode = resp.StatusCode

		return nil, upstreamErr
	}

	return json.RawMessage(body), nil
}

func (c *Client) observe(ctx context.Context, upstream string, upstreamErr *domainerrors.UpstreamError, elapsed time.Duration) {
	reason := ""
	if upstreamErr != nil {
		reason = string(upstreamErr.Reason)
		logs.FromContext(ctx, c.logger).Warn("Analytics call failed",
			slog.String("upstream", upstream),
			slog.String("reason", reason),
			slog.Duration("elapsed", elapsed),
			slog.Any("error", upstreamErr),
		)
	}

	if c.metrics != nil {
		c.metrics.ObserveUpstream(upstream, reason, elapsed)
	}
}

// encodePayload forwards raw JSON untouched and marshals everything else.
func encodePayload(payload any) ([]byte, error) {
	if raw, ok := payload.(json.RawMessage); ok {
		return raw, nil
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode request body")
	}

	return encoded, nil
}
