package usecase

import (
	"context"

	"github.com/google/uuid"

	"storefront/internal/domain/entity"
)

// AddItemInput carries a customer's option selections for adding a product to
// the cart. The variant is resolved server-side; partial selections never
// produce a cart mutation.
type AddItemInput struct {
	ProductID  uuid.UUID            `json:"product_id" validate:"required"`
	Selections []entity.OptionValue `json:"selections" validate:"dive"`
}

// CartUsecase defines the interface for cart management use cases
type CartUsecase interface {
	// GetCart retrieves the customer's cart with derived aggregates.
	GetCart(ctx context.Context, customerID uuid.UUID) (*entity.CartSummary, error)

	// AddItem resolves the selections to a variant and adds it to the cart,
	// incrementing quantity when the variant is already present.
	AddItem(ctx context.Context, customerID uuid.UUID, input *AddItemInput) (*entity.CartItem, error)

	// UpdateQuantity sets a line item's quantity, clamped to [1, maxQuantity].
	// Values below 1 are rejected; use RemoveItem instead.
	UpdateQuantity(ctx context.Context, customerID, variantID uuid.UUID, quantity int) (*entity.CartItem, error)

	// RemoveItem deletes the line item for a variant.
	RemoveItem(ctx context.Context, customerID, variantID uuid.UUID) error

	// Clear empties the customer's cart.
	Clear(ctx context.Context, customerID uuid.UUID) error
}
