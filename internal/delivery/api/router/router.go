// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"fintwin/config"
	"fintwin/internal/delivery/api/router/handler"
	"fintwin/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers and settings the router needs, injected by Fx.
type RouterParams struct {
	fx.In

	ProfileHandler *handler.ProfileHandler
	InsightHandler *handler.InsightHandler
	Metrics        *metrics.Metrics
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	profileHandler *handler.ProfileHandler
	insightHandler *handler.InsightHandler
	metrics        *metrics.Metrics
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		profileHandler: params.ProfileHandler,
		insightHandler: params.InsightHandler,
		metrics:        params.Metrics,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Banner)
	e.GET("/health", handler.HealthCheck)

	// Cost-of-living proxy keeps its historical top-level path
	e.POST("/predict-col", r.insightHandler.PredictCostOfLiving)

	userGroup := e.Group("/api/user")
	{
		userGroup.POST("/save", r.profileHandler.SaveProfile)
		userGroup.GET("/:email", r.profileHandler.GetProfile)
	}

	marketGroup := e.Group("/api/market")
	{
		marketGroup.POST("/alert", r.insightHandler.MarketAlert)
		marketGroup.GET("/data", r.insightHandler.MarketData)
	}

	e.POST("/api/simulate", r.insightHandler.Simulate)
}

// RegisterMetricsRoute exposes Prometheus metrics when enabled.
func (r *router) RegisterMetricsRoute(e *echo.Echo) {
	if r.metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}
}
