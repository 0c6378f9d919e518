package repository

import (
	"context"

	"github.com/google/uuid"
)

// EventRepository answers the physical-vs-event classification lookup: a
// product is event-like (intangible fulfillment, no delivery address needed)
// iff an associated event record exists for it.
type EventRepository interface {
	// ExistsForProduct reports whether an event record is attached to the product.
	ExistsForProduct(ctx context.Context, productID uuid.UUID) (bool, error)
}
