package analytics

import (
	"context"
	"encoding/json"
	"net/http"

	"fintwin/internal/domain/service"
)

const pathSimulateWealth = "/simulate_wealth"

type simulator struct {
	client *Client
}

// NewSimulator creates the wealth simulation client.
func NewSimulator(client *Client) service.Simulator {
	return &simulator{client: client}
}

// Simulate forwards params verbatim. An empty body is sent as {}.
func (s *simulator) Simulate(ctx context.Context, params json.RawMessage) service.Outcome[json.RawMessage] {
	if len(params) == 0 {
		params = json.RawMessage("{}")
	}

	body, upstreamErr := s.client.call(ctx, service.UpstreamSimulation, http.MethodPost, pathSimulateWealth, params)
	if upstreamErr != nil {
		return service.Failed[json.RawMessage](upstreamErr)
	}

	return service.Succeeded(body)
}
