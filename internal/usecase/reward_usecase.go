package usecase

import (
	"context"

	"github.com/google/uuid"

	"storefront/internal/domain/entity"
)

// RewardPaymentChoice selects how the customer pays for a reward SKU.
type RewardPaymentChoice string

const (
	// RewardPayWithPoints redeems the reward against the loyalty-point balance.
	RewardPayWithPoints RewardPaymentChoice = "points"
	// RewardPayWithPrice buys the reward at its monetary price through the
	// standard payment-collection step.
	RewardPayWithPrice RewardPaymentChoice = "price"
)

// RedeemRewardInput is the customer's redemption submission for a reward SKU.
type RedeemRewardInput struct {
	VariantID     uuid.UUID            `json:"variant_id" validate:"required"`
	Selections    []entity.OptionValue `json:"selections,omitempty"`
	Choice        RewardPaymentChoice  `json:"choice,omitempty"` // Ignored for zero-price zero-point rewards.
	PaymentMethod string               `json:"payment_method,omitempty"`
}

// RedeemRewardResult reports the created reward order. PointsUsed is zero on
// the price path; Balance is the refreshed loyalty balance after redemption.
type RedeemRewardResult struct {
	OrderID    uuid.UUID `json:"order_id"`
	PointsUsed int       `json:"points_used"`
	Balance    int       `json:"balance"`
	NextStep   NextStep  `json:"next_step"`
}

// RewardUsecase defines the interface for loyalty reward redemption
type RewardUsecase interface {
	// Redeem places a single-item reward order. Zero-price zero-point rewards
	// skip the payment choice and confirm immediately; the points path checks
	// the loyalty balance first; the price path routes into the standard
	// payment-collection step.
	Redeem(ctx context.Context, customerID uuid.UUID, input *RedeemRewardInput) (*RedeemRewardResult, error)
}
