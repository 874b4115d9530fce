// Package metrics holds the Prometheus collectors for upstream calls and outcomes.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const namespace = "fintwin"

// Result labels for upstream calls.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Metrics is the set of collectors registered on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	UpstreamRequests      *prometheus.CounterVec
	UpstreamDuration      *prometheus.HistogramVec
	BreakerState          *prometheus.GaugeVec
	Classifications       *prometheus.CounterVec
	CostOfLivingFallbacks prometheus.Counter
	MarketDataCacheHits   *prometheus.CounterVec
}

// New creates the collectors and registers them together with the Go runtime collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		UpstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "requests_total",
			Help:      "Analytics service calls by upstream, result and failure reason",
		}, []string{"upstream", "result", "reason"}),
		UpstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "request_duration_seconds",
			Help:      "Analytics service call duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"upstream"}),
		BreakerState: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "breaker_state",
			Help:      "Circuit breaker state per upstream (0 closed, 1 half-open, 2 open)",
		}, []string{"upstream"}),
		Classifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "profile",
			Name:      "classifications_total",
			Help:      "Classification attempts after a save, by outcome",
		}, []string{"outcome"}),
		CostOfLivingFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cost_of_living",
			Name:      "fallbacks_total",
			Help:      "Cost-of-living responses served from the fixed fallback estimate",
		}),
		MarketDataCacheHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "market_data",
			Name:      "cache_lookups_total",
			Help:      "Market data cache lookups by result",
		}, []string{"result"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.UpstreamRequests,
		m.UpstreamDuration,
		m.BreakerState,
		m.Classifications,
		m.CostOfLivingFallbacks,
		m.MarketDataCacheHits,
	)

	return m
}

// ObserveUpstream records one finished upstream call. reason is empty on success.
func (m *Metrics) ObserveUpstream(upstream, reason string, elapsed time.Duration) {
	result := ResultSuccess
	if reason != "" {
		result = ResultFailure
	}
	m.UpstreamRequests.WithLabelValues(upstream, result, reason).Inc()
	m.UpstreamDuration.WithLabelValues(upstream).Observe(elapsed.Seconds())
}

// Register adds a collector owned by another component, such as a connection pool.
func (m *Metrics) Register(c prometheus.Collector) error {
	return m.registry.Register(c)
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Module provides the metrics FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
