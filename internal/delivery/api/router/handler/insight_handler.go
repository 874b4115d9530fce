package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"fintwin/internal/delivery/api/response"
	deliverycontext "fintwin/internal/delivery/context"
	domainerrors "fintwin/internal/domain/errors"
	"fintwin/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// InsightHandlerParams holds dependencies for InsightHandler, injected by Fx.
type InsightHandlerParams struct {
	fx.In

	InsightUC usecase.InsightUsecase
	Logger    *slog.Logger
}

// InsightHandler serves the analytics proxy endpoints
type InsightHandler struct {
	insightUC usecase.InsightUsecase
	logger    *slog.Logger
}

// NewInsightHandler is the constructor for InsightHandler
func NewInsightHandler(params InsightHandlerParams) *InsightHandler {
	return &InsightHandler{
		insightUC: params.InsightUC,
		logger:    params.Logger,
	}
}

// looseString accepts a JSON string or number, since form inputs send pincodes either
// way. Any other JSON value decodes as empty.
type looseString string

func (s *looseString) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = looseString(str)

		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err == nil {
		if _, err := strconv.ParseFloat(num.String(), 64); err == nil {
			*s = looseString(num.String())

			return nil
		}
	}
	*s = ""

	return nil
}

// CostOfLivingRequest represents the request body for a cost-of-living estimate
type CostOfLivingRequest struct {
	Pincode  looseString `json:"pincode"`
	CityTier looseString `json:"city_tier"`
}

// PredictCostOfLiving handles POST /predict-col. It always answers 200: a body that
// cannot be read is treated as an empty query, and upstream failures are answered
// with the fallback estimate.
func (h *InsightHandler) PredictCostOfLiving(c echo.Context) error {
	var req CostOfLivingRequest
	if err := c.Bind(&req); err != nil {
		h.logger.DebugContext(c.Request().Context(), "Unreadable cost of living query, estimating without it",
			slog.Any("error", err),
		)
		req = CostOfLivingRequest{}
	}

	result := h.insightUC.EstimateCostOfLiving(deliverycontext.Detached(c), &usecase.CostOfLivingInput{
		Pincode:  string(req.Pincode),
		CityTier: string(req.CityTier),
	})

	return response.Passthrough(c, http.StatusOK, result.Payload)
}

// MarketAlert handles POST /api/market/alert
func (h *InsightHandler) MarketAlert(c echo.Context) error {
	payload, err := h.insightUC.MarketAlert(deliverycontext.Detached(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Passthrough(c, http.StatusOK, payload)
}

// MarketData handles GET /api/market/data
func (h *InsightHandler) MarketData(c echo.Context) error {
	payload, err := h.insightUC.MarketData(deliverycontext.Detached(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Passthrough(c, http.StatusOK, payload)
}

// Simulate handles POST /api/simulate, forwarding the body untouched
func (h *InsightHandler) Simulate(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return errors.Wrap(err, "failed to read simulation parameters")
	}
	if len(body) > 0 && !json.Valid(body) {
		return response.BindingError(c, domainerrors.ErrValidationFailed.ErrorCode(), "Simulation parameters must be JSON")
	}

	payload, err := h.insightUC.Simulate(deliverycontext.Detached(c), json.RawMessage(body))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Passthrough(c, http.StatusOK, payload)
}
