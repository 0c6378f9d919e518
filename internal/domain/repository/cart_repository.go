// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"github.com/google/uuid"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// Domain-specific errors for cart persistence.
var (
	// ErrCartItemNotFound is returned when a line item is not found.
	ErrCartItemNotFound = errors.New("cart item not found")
	// ErrDuplicateCartItem is returned when inserting a line item for a variant already in the cart.
	ErrDuplicateCartItem = errors.New("cart item already exists for variant")
)

// CartRepository defines the interface for cart line-item database operations.
// Line items are scoped per customer and ordered by insertion position.
type CartRepository interface {
	// CreateItem persists a new line item at the end of the customer's cart.
	CreateItem(ctx context.Context, item *entity.CartItem) error

	// FindItemsByCustomer retrieves the customer's line items in insertion order.
	FindItemsByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.CartItem, error)

	// FindItemByVariant retrieves the customer's line item for a specific variant.
	FindItemByVariant(ctx context.Context, customerID, variantID uuid.UUID) (*entity.CartItem, error)

	// UpdateItemQuantity sets the quantity of an existing line item.
	UpdateItemQuantity(ctx context.Context, id uuid.UUID, quantity int) error

	// DeleteItem removes the line item for a variant from the customer's cart.
	DeleteItem(ctx context.Context, customerID, variantID uuid.UUID) error

	// DeleteItems removes the line items for the given variants from the customer's cart.
	// Used by checkout reconciliation to remove exactly the ordered items.
	DeleteItems(ctx context.Context, customerID uuid.UUID, variantIDs []uuid.UUID) error

	// ClearCart removes every line item of the customer.
	ClearCart(ctx context.Context, customerID uuid.UUID) error
}
