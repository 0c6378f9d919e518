package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"storefront/internal/domain/entity"
)

// ResolveResult reports the outcome of resolving option selections against a
// product's variants, plus per-option availability for the current selection.
type ResolveResult struct {
	State        entity.ResolverState `json:"state"`
	Variant      *entity.Variant      `json:"variant,omitempty"` // Set when a single variant matches the selection.
	Price        decimal.Decimal      `json:"price"`             // Variant price, or product base price for option-less products.
	InStock      bool                 `json:"in_stock"`          // Derived sub-state; always true when quantity tracking is off.
	Availability map[string][]string  `json:"availability"`      // Option name -> selectable values given the other selections.
}

// CatalogUsecase defines the interface for variant resolution use cases
type CatalogUsecase interface {
	// ResolveVariant maps a (possibly partial) selection set onto the product's
	// variants and reports state, price and per-option availability.
	ResolveVariant(ctx context.Context, productID uuid.UUID, selections []entity.OptionValue) (*ResolveResult, error)
}
