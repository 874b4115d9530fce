package impl

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"fintwin/config"
	domainerrors "fintwin/internal/domain/errors"
	"fintwin/internal/domain/service"
	"fintwin/internal/infra/metrics"
	mockService "fintwin/internal/mocks/service"
	"fintwin/internal/usecase"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type insightServiceFixtures struct {
	service       usecase.InsightUsecase
	costEstimator *mockService.MockCostEstimator
	marketSignal  *mockService.MockMarketSignal
	simulator     *mockService.MockSimulator
	metrics       *metrics.Metrics
}

func createTestInsightService(t *testing.T) insightServiceFixtures {
	costEstimator := mockService.NewMockCostEstimator(t)
	marketSignal := mockService.NewMockMarketSignal(t)
	simulator := mockService.NewMockSimulator(t)
	m := metrics.New()

	cfg := &config.Config{}
	cfg.CostOfLiving.FallbackEstimate = 25000
	cfg.CostOfLiving.FallbackNote = "ML Service Unavailable, using default"

	srv, err := NewInsightService(InsightServiceParams{
		CostEstimator: costEstimator,
		MarketSignal:  marketSignal,
		Simulator:     simulator,
		Config:        cfg,
		Metrics:       m,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	return insightServiceFixtures{
		service:       srv,
		costEstimator: costEstimator,
		marketSignal:  marketSignal,
		simulator:     simulator,
		metrics:       m,
	}
}

func upstreamFailure(upstream string, reason domainerrors.FailureReason) *domainerrors.UpstreamError {
	return domainerrors.NewUpstreamError(upstream, reason, errors.New("upstream down"))
}

func TestInsightService_EstimateCostOfLiving_PassesThrough(t *testing.T) {
	fx := createTestInsightService(t)
	ctx := context.Background()
	raw := json.RawMessage(`{"estimated_cost":31000}`)

	fx.costEstimator.EXPECT().
		Estimate(ctx, service.CostOfLivingQuery{Pincode: "560001", CityTier: "Tier-2"}).
		Return(service.Succeeded(service.CostEstimate{EstimatedCost: 31000, Raw: raw}))

	result := fx.service.EstimateCostOfLiving(ctx, &usecase.CostOfLivingInput{Pincode: "560001", CityTier: "Tier-2"})

	assert.False(t, result.Degraded)
	assert.JSONEq(t, string(raw), string(result.Payload))
}

func TestInsightService_EstimateCostOfLiving_FallsBack(t *testing.T) {
	fx := createTestInsightService(t)
	ctx := context.Background()

	fx.costEstimator.EXPECT().
		Estimate(ctx, service.CostOfLivingQuery{}).
		Return(service.Failed[service.CostEstimate](upstreamFailure(service.UpstreamCostOfLiving, domainerrors.FailureTimeout)))

	result := fx.service.EstimateCostOfLiving(ctx, &usecase.CostOfLivingInput{})

	assert.True(t, result.Degraded)
	assert.JSONEq(t, `{"estimated_cost":25000,"note":"ML Service Unavailable, using default"}`, string(result.Payload))
	assert.InDelta(t, 1, testutil.ToFloat64(fx.metrics.CostOfLivingFallbacks), 0)
}

func TestInsightService_MarketAlert(t *testing.T) {
	fx := createTestInsightService(t)
	ctx := context.Background()

	fx.marketSignal.EXPECT().Alert(ctx).
		Return(service.Succeeded(json.RawMessage(`{"alert":"High Volatility"}`))).Once()

	payload, err := fx.service.MarketAlert(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"alert":"High Volatility"}`, string(payload))

	fx.marketSignal.EXPECT().Alert(ctx).
		Return(service.Failed[json.RawMessage](upstreamFailure(service.UpstreamMarketAlert, domainerrors.FailureBadStatus))).Once()

	payload, err = fx.service.MarketAlert(ctx)
	assert.Nil(t, payload)
	require.ErrorIs(t, err, domainerrors.ErrMarketAlertUnavailable)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.HTTPCode())
	assert.Equal(t, "Failed to get market alerts", appErr.Message())
}

func TestInsightService_MarketData_FailureIsSurfaced(t *testing.T) {
	fx := createTestInsightService(t)
	ctx := context.Background()

	fx.marketSignal.EXPECT().Data(ctx).
		Return(service.Failed[json.RawMessage](upstreamFailure(service.UpstreamMarketData, domainerrors.FailureCircuitOpen)))

	_, err := fx.service.MarketData(ctx)

	require.ErrorIs(t, err, domainerrors.ErrMarketDataUnavailable)
}

func TestInsightService_Simulate(t *testing.T) {
	fx := createTestInsightService(t)
	ctx := context.Background()
	params := json.RawMessage(`{"monthly_investment":5000}`)

	fx.simulator.EXPECT().Simulate(ctx, params).
		Return(service.Succeeded(json.RawMessage(`[{"year":1}]`))).Once()

	payload, err := fx.service.Simulate(ctx, params)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"year":1}]`, string(payload))

	fx.simulator.EXPECT().Simulate(ctx, params).
		Return(service.Failed[json.RawMessage](upstreamFailure(service.UpstreamSimulation, domainerrors.FailureMalformed))).Once()

	_, err = fx.service.Simulate(ctx, params)
	require.ErrorIs(t, err, domainerrors.ErrSimulationUnavailable)
}
