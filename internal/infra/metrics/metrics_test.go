package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveUpstream(t *testing.T) {
	m := New()

	m.ObserveUpstream("classifier", "", 20*time.Millisecond)
	m.ObserveUpstream("classifier", "timeout", time.Second)
	m.ObserveUpstream("classifier", "timeout", time.Second)

	assert.InDelta(t, 1, testutil.ToFloat64(m.UpstreamRequests.WithLabelValues("classifier", ResultSuccess, "")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.UpstreamRequests.WithLabelValues("classifier", ResultFailure, "timeout")), 0)
}

func TestHandler_ExposesCollectors(t *testing.T) {
	m := New()
	m.CostOfLivingFallbacks.Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "fintwin_cost_of_living_fallbacks_total 1")
}

func TestRegister_ExternalCollector(t *testing.T) {
	m := New()
	pool := prometheus.NewGauge(prometheus.GaugeOpts{Name: "go_sql_open_connections", Help: "Open connections", ConstLabels: prometheus.Labels{"db_name": "profiles"}})
	pool.Set(3)

	require.NoError(t, m.Register(pool))
	assert.Error(t, m.Register(pool))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `go_sql_open_connections{db_name="profiles"} 3`)
}
