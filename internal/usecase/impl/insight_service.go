package impl

import (
	"context"
	"encoding/json"
	"log/slog"

	"fintwin/config"
	domainerrors "fintwin/internal/domain/errors"
	"fintwin/internal/domain/service"
	logs "fintwin/internal/infra/log"
	"fintwin/internal/infra/metrics"
	"fintwin/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// InsightServiceParams holds dependencies for insightService, injected by Fx.
type InsightServiceParams struct {
	fx.In

	CostEstimator service.CostEstimator
	MarketSignal  service.MarketSignal
	Simulator     service.Simulator
	Config        *config.Config
	Metrics       *metrics.Metrics `optional:"true"`
	Logger        *slog.Logger
}

// insightService implements the InsightUsecase interface.
type insightService struct {
	costEstimator service.CostEstimator
	marketSignal  service.MarketSignal
	simulator     service.Simulator
	fallback      json.RawMessage
	metrics       *metrics.Metrics
	logger        *slog.Logger
}

// NewInsightService is the constructor for insightService.
func NewInsightService(params InsightServiceParams) (usecase.InsightUsecase, error) {
	fallback, err := json.Marshal(usecase.CostOfLivingFallback{
		EstimatedCost: params.Config.CostOfLiving.FallbackEstimate,
		Note:          params.Config.CostOfLiving.FallbackNote,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode cost of living fallback")
	}

	return &insightService{
		costEstimator: params.CostEstimator,
		marketSignal:  params.MarketSignal,
		simulator:     params.Simulator,
		fallback:      fallback,
		metrics:       params.Metrics,
		logger:        params.Logger,
	}, nil
}

// EstimateCostOfLiving passes the upstream estimate through, or the fallback body on failure.
func (srv *insightService) EstimateCostOfLiving(ctx context.Context, input *usecase.CostOfLivingInput) *usecase.CostOfLivingResult {
	outcome := srv.costEstimator.Estimate(ctx, service.CostOfLivingQuery{
		Pincode:  input.Pincode,
		CityTier: input.CityTier,
	})
	if outcome.OK() {
		return &usecase.CostOfLivingResult{Payload: outcome.Value().Raw}
	}

	logs.FromContext(ctx, srv.logger).Warn("Cost of living estimate unavailable, using default",
		slog.String("reason", string(outcome.Failure().Reason)),
	)
	if srv.metrics != nil {
		srv.metrics.CostOfLivingFallbacks.Inc()
	}

	return &usecase.CostOfLivingResult{
		Payload:  srv.fallback,
		Degraded: true,
	}
}

// MarketAlert forwards the alert query; failures are surfaced.
func (srv *insightService) MarketAlert(ctx context.Context) (json.RawMessage, error) {
	return srv.passthrough(ctx, srv.marketSignal.Alert(ctx), domainerrors.ErrMarketAlertUnavailable)
}

// MarketData forwards the market data query; failures are surfaced.
func (srv *insightService) MarketData(ctx context.Context) (json.RawMessage, error) {
	return srv.passthrough(ctx, srv.marketSignal.Data(ctx), domainerrors.ErrMarketDataUnavailable)
}

// Simulate forwards simulation parameters; failures are surfaced.
func (srv *insightService) Simulate(ctx context.Context, params json.RawMessage) (json.RawMessage, error) {
	return srv.passthrough(ctx, srv.simulator.Simulate(ctx, params), domainerrors.ErrSimulationUnavailable)
}

func (srv *insightService) passthrough(ctx context.Context, outcome service.Outcome[json.RawMessage], unavailable *domainerrors.BaseError) (json.RawMessage, error) {
	if outcome.OK() {
		return outcome.Value(), nil
	}

	failure := outcome.Failure()
	logs.FromContext(ctx, srv.logger).Error(unavailable.Message(),
		slog.String("upstream", failure.Service),
		slog.String("reason", string(failure.Reason)),
		slog.Any("error", failure),
	)

	return nil, errors.Wrap(unavailable.WithDetails(string(failure.Reason)), failure.Error())
}
