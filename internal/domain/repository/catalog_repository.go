package repository

import (
	"context"

	"github.com/google/uuid"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// Domain-specific errors for catalog reads.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrVariantNotFound is returned when a variant is not found.
	ErrVariantNotFound = errors.New("variant not found")
)

// CatalogRepository defines the read-through interface over the product catalog:
// products with their option schema, and their variants.
type CatalogRepository interface {
	// FindProductByID retrieves a product with its declared option schema.
	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindVariantByID retrieves a single variant.
	FindVariantByID(ctx context.Context, id uuid.UUID) (*entity.Variant, error)

	// FindVariantsByProduct retrieves all variants of a product.
	FindVariantsByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Variant, error)
}
