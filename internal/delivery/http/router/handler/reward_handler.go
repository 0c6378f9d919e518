package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"
)

// RewardHandlerParams holds dependencies for RewardHandler, injected by Fx.
type RewardHandlerParams struct {
	fx.In

	RewardUC usecase.RewardUsecase
	Logger   *slog.Logger
}

// RewardHandler holds dependencies for reward-related handlers
type RewardHandler struct {
	rewardUC usecase.RewardUsecase
	logger   *slog.Logger
}

// NewRewardHandler is the constructor for RewardHandler
func NewRewardHandler(params RewardHandlerParams) *RewardHandler {
	return &RewardHandler{
		rewardUC: params.RewardUC,
		logger:   params.Logger,
	}
}

// Redeem places a single-item reward order
func (h *RewardHandler) Redeem(c echo.Context) error {
	customerID, err := getCustomerID(c)
	if err != nil {
		return err
	}

	var req usecase.RedeemRewardInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid redemption input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.rewardUC.Redeem(c.Request().Context(), customerID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result, "Reward redeemed successfully")
}
