package analytics

import (
	"log/slog"

	"fintwin/config"
	"fintwin/internal/domain/service"
	"fintwin/internal/infra/metrics"

	"go.uber.org/fx"
)

// Params holds dependencies for the analytics clients, injected by Fx
type Params struct {
	fx.In

	Config  *config.Config
	Metrics *metrics.Metrics
	Logger  *slog.Logger
	Cache   service.MarketDataCache
}

// Clients groups every analytics client for the usecase layer
type Clients struct {
	fx.Out

	Classifier    service.Classifier
	CostEstimator service.CostEstimator
	MarketSignal  service.MarketSignal
	Simulator     service.Simulator
}

// NewClients builds the shared transport and the per-endpoint clients on top of it.
func NewClients(params Params) Clients {
	client := NewClient(params.Config.Analytics, params.Metrics, params.Logger)

	params.Logger.Info("Analytics service configured",
		slog.String("base_url", params.Config.Analytics.BaseURL),
		slog.Duration("timeout", params.Config.Analytics.Timeout),
	)

	return Clients{
		Classifier:    NewClassifier(client),
		CostEstimator: NewCostEstimator(client, params.Config.CostOfLiving),
		MarketSignal:  NewMarketSignal(client, params.Cache, params.Metrics),
		Simulator:     NewSimulator(client),
	}
}

// Module provides the analytics FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewClients),
)
