package impl

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/fx"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"
)

type catalogService struct {
	catalogRepo repository.CatalogRepository
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CatalogRepo repository.CatalogRepository
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		catalogRepo: params.CatalogRepo,
	}
}

// ResolveVariant maps a (possibly partial) selection set onto the product's
// variants and reports state, price and per-option availability.
func (s *catalogService) ResolveVariant(ctx context.Context, productID uuid.UUID, selections []entity.OptionValue) (*usecase.ResolveResult, error) {
	product, err := s.catalogRepo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	variants, err := s.catalogRepo.FindVariantsByProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find variants by product")
	}

	selection := entity.NewVariantSelection(product, variants)
	for _, sel := range selections {
		if _, err := selection.SelectOption(sel.Name, sel.Value); err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
		}
	}

	availability := make(map[string][]string, len(product.Options))
	for _, opt := range product.Options {
		availability[opt.Name] = selection.AvailableValues(opt.Name)
	}

	result := &usecase.ResolveResult{
		State:        selection.State(),
		Price:        product.BasePrice,
		InStock:      true,
		Availability: availability,
	}

	if variant := selection.CurrentMatch(); variant != nil {
		result.Variant = variant
		result.Price = variant.Price
		result.InStock = variant.InStock(product.TracksQuantity)
	}

	return result, nil
}
