package service

import (
	"context"

	"github.com/google/uuid"
)

// LoyaltyService exposes the customer's loyalty-point balance. The balance is
// owned by the external customer service; this engine only reads it and asks
// for a refresh after a redemption.
type LoyaltyService interface {
	// Balance returns the customer's current loyalty-point balance.
	Balance(ctx context.Context, customerID uuid.UUID) (int, error)

	// RefreshBalance re-fetches the balance after a points redemption.
	RefreshBalance(ctx context.Context, customerID uuid.UUID) (int, error)
}
