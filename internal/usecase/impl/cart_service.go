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

type cartService struct {
	cartRepo    repository.CartRepository
	catalogRepo repository.CatalogRepository
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	CatalogRepo repository.CatalogRepository
}

// NewCartService creates a new cart service instance
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:    params.CartRepo,
		catalogRepo: params.CatalogRepo,
	}
}

// GetCart returns the customer's cart items together with the derived
// item count and subtotal.
func (s *cartService) GetCart(ctx context.Context, customerID uuid.UUID) (*entity.CartSummary, error) {
	items, err := s.cartRepo.FindItemsByCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cart items by customer")
	}

	summary := entity.SummarizeCart(items)

	return summary, nil
}

// AddItem resolves the option selections to a single variant, verifies stock,
// then inserts a new line or increments the existing one for that variant.
func (s *cartService) AddItem(ctx context.Context, customerID uuid.UUID, input *usecase.AddItemInput) (*entity.CartItem, error) {
	product, err := s.catalogRepo.FindProductByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}
	if !product.Active {
		return nil, domainerrors.ErrProductNotFound
	}

	variants, err := s.catalogRepo.FindVariantsByProduct(ctx, input.ProductID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find variants by product")
	}

	selection := entity.NewVariantSelection(product, variants)
	for _, sel := range input.Selections {
		if _, err := selection.SelectOption(sel.Name, sel.Value); err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
		}
	}
	if _, ok := selection.Resolved(); !ok {
		return nil, domainerrors.ErrVariantNotResolved
	}

	variantID := product.ID
	unitPrice := product.BasePrice
	maxQuantity := entity.UnlimitedMaxQuantity
	options := input.Selections

	// Products without variants sell at base price under the product's own ID.
	if variant := selection.CurrentMatch(); variant != nil {
		if !variant.InStock(product.TracksQuantity) {
			return nil, domainerrors.ErrVariantOutOfStock
		}

		variantID = variant.ID
		unitPrice = variant.Price
		options = variant.Options
		if product.TracksQuantity {
			maxQuantity = variant.Quantity
		}
	}
	if maxQuantity < 1 {
		return nil, domainerrors.ErrVariantOutOfStock
	}

	existing, err := s.cartRepo.FindItemByVariant(ctx, customerID, variantID)
	if err != nil && !errors.Is(err, repository.ErrCartItemNotFound) {
		return nil, errors.Wrap(err, "failed to find cart item by variant")
	}

	if existing != nil {
		existing.Quantity++
		existing.MaxQuantity = maxQuantity
		existing.ClampQuantity()

		if err := s.cartRepo.UpdateItemQuantity(ctx, existing.ID, existing.Quantity); err != nil {
			return nil, errors.Wrap(err, "failed to update cart item quantity")
		}

		return existing, nil
	}

	image := ""
	if len(product.Images) > 0 {
		image = product.Images[0]
	}

	item := &entity.CartItem{
		ID:          uuid.New(),
		CustomerID:  customerID,
		VariantID:   variantID,
		ProductID:   product.ID,
		Name:        product.Name,
		Image:       image,
		UnitPrice:   unitPrice,
		Quantity:    1,
		MaxQuantity: maxQuantity,
		Options:     options,
	}

	if err := s.cartRepo.CreateItem(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to create cart item")
	}

	return item, nil
}

// UpdateQuantity sets the quantity of the line identified by variant ID,
// clamped to the snapshotted stock ceiling.
func (s *cartService) UpdateQuantity(ctx context.Context, customerID uuid.UUID, variantID uuid.UUID, quantity int) (*entity.CartItem, error) {
	if quantity <= 0 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	item, err := s.cartRepo.FindItemByVariant(ctx, customerID, variantID)
	if err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return nil, domainerrors.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart item by variant")
	}

	item.Quantity = quantity
	item.ClampQuantity()

	if err := s.cartRepo.UpdateItemQuantity(ctx, item.ID, item.Quantity); err != nil {
		return nil, errors.Wrap(err, "failed to update cart item quantity")
	}

	return item, nil
}

// RemoveItem deletes the line identified by variant ID from the customer's cart.
func (s *cartService) RemoveItem(ctx context.Context, customerID uuid.UUID, variantID uuid.UUID) error {
	if err := s.cartRepo.DeleteItem(ctx, customerID, variantID); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return domainerrors.ErrCartItemNotFound
		}

		return errors.Wrap(err, "failed to delete cart item")
	}

	return nil
}

// Clear removes every item from the customer's cart.
func (s *cartService) Clear(ctx context.Context, customerID uuid.UUID) error {
	if err := s.cartRepo.ClearCart(ctx, customerID); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}
