package analytics

import (
	"context"
	"encoding/json"
	"net/http"

	"fintwin/config"
	"fintwin/internal/domain/service"

	"github.com/pkg/errors"
)

const pathPredictCostOfLiving = "/predict_cost_of_living"

type costOfLivingRequest struct {
	State    string `json:"state"`
	CityTier string `json:"city_tier"`
	Pincode  string `json:"pincode,omitempty"`
}

type costOfLivingResponse struct {
	EstimatedCost *float64 `json:"estimated_cost"`
}

type costEstimator struct {
	client           *Client
	placeholderState string
	defaultCityTier  string
}

// NewCostEstimator creates the cost-of-living client.
func NewCostEstimator(client *Client, cfg config.CostOfLivingConfig) service.CostEstimator {
	return &costEstimator{
		client:           client,
		placeholderState: cfg.PlaceholderState,
		defaultCityTier:  cfg.DefaultCityTier,
	}
}

// Estimate requests an estimate; the answer must carry a numeric estimated_cost.
func (e *costEstimator) Estimate(ctx context.Context, query service.CostOfLivingQuery) service.Outcome[service.CostEstimate] {
	req := costOfLivingRequest{
		State:    e.placeholderState,
		CityTier: query.CityTier,
		Pincode:  query.Pincode,
	}
	if req.CityTier == "" {
		req.CityTier = e.defaultCityTier
	}

	body, upstreamErr := e.client.call(ctx, service.UpstreamCostOfLiving, http.MethodPost, pathPredictCostOfLiving, req)
	if upstreamErr != nil {
		return service.Failed[service.CostEstimate](upstreamErr)
	}

	var resp costOfLivingResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return service.Failed[service.CostEstimate](malformed(service.UpstreamCostOfLiving, errors.Wrap(err, "failed to decode estimate")))
	}
	if resp.EstimatedCost == nil {
		return service.Failed[service.CostEstimate](malformed(service.UpstreamCostOfLiving, errors.New("estimated_cost is missing")))
	}

	return service.Succeeded(service.CostEstimate{
		EstimatedCost: *resp.EstimatedCost,
		Raw:           body,
	})
}
