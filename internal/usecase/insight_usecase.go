package usecase

import (
	"context"
	"encoding/json"
)

// InsightUsecase defines the auxiliary analytics queries forwarded to external services.
type InsightUsecase interface {
	// EstimateCostOfLiving never fails: upstream failures yield the fallback estimate.
	EstimateCostOfLiving(ctx context.Context, input *CostOfLivingInput) *CostOfLivingResult
	MarketAlert(ctx context.Context) (json.RawMessage, error)
	MarketData(ctx context.Context) (json.RawMessage, error)
	Simulate(ctx context.Context, params json.RawMessage) (json.RawMessage, error)
}

// CostOfLivingInput defines the location signal for an estimate.
type CostOfLivingInput struct {
	Pincode  string
	CityTier string
}

// CostOfLivingResult is the body to return and whether it is the fallback.
type CostOfLivingResult struct {
	Payload  json.RawMessage
	Degraded bool
}

// CostOfLivingFallback is the body served when no estimate could be obtained.
type CostOfLivingFallback struct {
	EstimatedCost float64 `json:"estimated_cost"`
	Note          string  `json:"note"`
}
