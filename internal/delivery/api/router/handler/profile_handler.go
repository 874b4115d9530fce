package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"fintwin/internal/delivery/api/response"
	deliverycontext "fintwin/internal/delivery/context"
	"fintwin/internal/domain/entity"
	domainerrors "fintwin/internal/domain/errors"
	"fintwin/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const messageProfileSaved = "User profile saved"

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler holds dependencies for profile-related handlers
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// InvestmentsRequest is the submitted holdings record. Missing holdings are stored as 0.
type InvestmentsRequest struct {
	Gold   *float64 `json:"gold" validate:"omitempty,gte=0"`
	FD     *float64 `json:"fd" validate:"omitempty,gte=0"`
	Stocks *float64 `json:"stocks" validate:"omitempty,gte=0"`
	Crypto *float64 `json:"crypto" validate:"omitempty,gte=0"`
}

// SaveProfileRequest represents the request body for saving a profile.
// Absent fields keep their stored value; userClass and createdAt are never taken from it.
type SaveProfileRequest struct {
	Email           string               `json:"email" validate:"required"`
	Name            *string              `json:"name"`
	Age             *int                 `json:"age" validate:"omitempty,gte=0"`
	Role            *entity.Role         `json:"role"`
	Pincode         *string              `json:"pincode"`
	MonthlyIncome   *float64             `json:"monthlyIncome" validate:"omitempty,gte=0"`
	MonthlySpending *float64             `json:"monthlySpending" validate:"omitempty,gte=0"`
	IsInvestor      *entity.InvestorFlag `json:"isInvestor"`
	Investments     *InvestmentsRequest  `json:"investments"`
	CostOfLiving    *float64             `json:"costOfLiving" validate:"omitempty,gte=0"`
}

func (r *SaveProfileRequest) toPatch() *entity.ProfilePatch {
	patch := &entity.ProfilePatch{
		Name:            r.Name,
		Age:             r.Age,
		Role:            r.Role,
		Pincode:         r.Pincode,
		MonthlyIncome:   r.MonthlyIncome,
		MonthlySpending: r.MonthlySpending,
		IsInvestor:      r.IsInvestor,
		CostOfLiving:    r.CostOfLiving,
	}
	if r.Investments != nil {
		patch.Investments = &entity.InvestmentsPatch{
			Gold:   r.Investments.Gold,
			FD:     r.Investments.FD,
			Stocks: r.Investments.Stocks,
			Crypto: r.Investments.Crypto,
		}
	}

	return patch
}

// SaveProfile handles POST /api/user/save: upsert by email, then best-effort classification
func (h *ProfileHandler) SaveProfile(c echo.Context) error {
	var req SaveProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, domainerrors.ErrValidationFailed.ErrorCode(), domainerrors.ErrValidationFailed.Message())
	}
	req.Email = strings.TrimSpace(req.Email)

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, domainerrors.ErrValidationFailed.ErrorCode(), domainerrors.ErrValidationFailed.Message(), err)
	}

	profile, err := h.profileUC.SaveProfile(deliverycontext.Detached(c), &usecase.SaveProfileInput{
		Email: req.Email,
		Patch: req.toPatch(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, messageProfileSaved, profile)
}

// GetProfile handles GET /api/user/:email
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	email := strings.TrimSpace(c.Param("email"))
	if email == "" {
		return response.BindingError(c, domainerrors.ErrValidationFailed.ErrorCode(), "Email is required")
	}

	profile, err := h.profileUC.GetProfile(c.Request().Context(), email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusOK, profile)
}
