package service

import (
	"context"
	"encoding/json"

	"fintwin/internal/domain/entity"
	domainerrors "fintwin/internal/domain/errors"
)

// Upstream names used for breakers, metrics and logs.
const (
	UpstreamClassifier   = "classifier"
	UpstreamCostOfLiving = "cost_of_living"
	UpstreamMarketAlert  = "market_alert"
	UpstreamMarketData   = "market_data"
	UpstreamSimulation   = "simulation"
)

// Outcome is the result of a single external call: a value or an upstream failure.
type Outcome[T any] struct {
	value   T
	failure *domainerrors.UpstreamError
}

// Succeeded wraps a usable upstream answer.
func Succeeded[T any](value T) Outcome[T] {
	return Outcome[T]{value: value}
}

// Failed wraps an upstream failure.
func Failed[T any](failure *domainerrors.UpstreamError) Outcome[T] {
	return Outcome[T]{failure: failure}
}

// OK reports whether the call produced a value.
func (o Outcome[T]) OK() bool {
	return o.failure == nil
}

// Value returns the upstream answer; zero when the call failed.
func (o Outcome[T]) Value() T {
	return o.value
}

// Failure returns the upstream failure; nil when the call succeeded.
func (o Outcome[T]) Failure() *domainerrors.UpstreamError {
	return o.failure
}

// ClassificationSummary is the financial summary sent to the classifier.
type ClassificationSummary struct {
	Income      float64             `json:"income"`
	Spending    float64             `json:"spending"`
	Investments entity.Investments  `json:"investments"`
	IsInvestor  entity.InvestorFlag `json:"isInvestor"`
}

// SummaryOf extracts the classifier input from a persisted profile.
func SummaryOf(profile *entity.Profile) ClassificationSummary {
	return ClassificationSummary{
		Income:      profile.MonthlyIncome,
		Spending:    profile.MonthlySpending,
		Investments: profile.Investments,
		IsInvestor:  profile.IsInvestor,
	}
}

// Classifier maps a financial summary to a behavioural label.
type Classifier interface {
	// Classify makes exactly one attempt; labels outside entity.UserClass are failures.
	Classify(ctx context.Context, summary ClassificationSummary) Outcome[entity.UserClass]
}

// CostOfLivingQuery carries the location signal for an estimate.
type CostOfLivingQuery struct {
	Pincode  string
	CityTier string
}

// CostEstimate is a successful estimate plus the upstream body for passthrough.
type CostEstimate struct {
	EstimatedCost float64
	Raw           json.RawMessage
}

// CostEstimator requests cost-of-living estimates.
type CostEstimator interface {
	Estimate(ctx context.Context, query CostOfLivingQuery) Outcome[CostEstimate]
}

// MarketSignal forwards alert and data queries to the market service.
type MarketSignal interface {
	Alert(ctx context.Context) Outcome[json.RawMessage]
	Data(ctx context.Context) Outcome[json.RawMessage]
}

// Simulator forwards wealth simulation parameters.
type Simulator interface {
	Simulate(ctx context.Context, params json.RawMessage) Outcome[json.RawMessage]
}

// MarketDataCache keeps recent successful market data payloads.
type MarketDataCache interface {
	Get(ctx context.Context) (json.RawMessage, bool)
	Set(ctx context.Context, payload json.RawMessage)
	Close() error
}
