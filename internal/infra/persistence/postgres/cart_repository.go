package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"
)

// cartRepository implements the repository.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{
		db: db,
	}
}

// CreateItem persists a new line item at the end of the customer's cart.
func (repo *cartRepository) CreateItem(ctx context.Context, item *entity.CartItem) error {
	itemM := fromCartItemDomain(item)

	// Append after the customer's current last position.
	var maxPosition *int
	if err := repo.db.WithContext(ctx).
		Model(&model.CartItemModel{}).
		Where("customer_id = ?", item.CustomerID).
		Select("MAX(position)").
		Scan(&maxPosition).Error; err != nil {
		return errors.Wrap(err, "failed to determine cart position")
	}
	if maxPosition != nil {
		itemM.Position = *maxPosition + 1
	}

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCartItem
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create cart item")
	}

	item.ID = itemM.ID
	item.Position = itemM.Position
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// FindItemsByCustomer retrieves the customer's line items in insertion order.
func (repo *cartRepository) FindItemsByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.CartItem, error) {
	var itemModels []*model.CartItemModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("position ASC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find cart items by customer")
	}

	items := make([]*entity.CartItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toCartItemDomain(itemM))
	}

	return items, nil
}

// FindItemByVariant retrieves the customer's line item for a specific variant.
func (repo *cartRepository) FindItemByVariant(ctx context.Context, customerID, variantID uuid.UUID) (*entity.CartItem, error) {
	var itemM model.CartItemModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ? AND variant_id = ?", customerID, variantID).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart item by variant")
	}

	return toCartItemDomain(&itemM), nil
}

// UpdateItemQuantity sets the quantity of an existing line item.
func (repo *cartRepository) UpdateItemQuantity(ctx context.Context, id uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CartItemModel{}).
		Where("id = ?", id).
		Update("quantity", quantity)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update cart item quantity")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// DeleteItem removes the line item for a variant from the customer's cart.
func (repo *cartRepository) DeleteItem(ctx context.Context, customerID, variantID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("customer_id = ? AND variant_id = ?", customerID, variantID).
		Delete(&model.CartItemModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete cart item")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// DeleteItems removes the line items for the given variants from the customer's cart.
func (repo *cartRepository) DeleteItems(ctx context.Context, customerID uuid.UUID, variantIDs []uuid.UUID) error {
	if len(variantIDs) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ? AND variant_id IN ?", customerID, variantIDs).
		Delete(&model.CartItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete cart items")
	}

	return nil
}

// ClearCart removes every line item of the customer.
func (repo *cartRepository) ClearCart(ctx context.Context, customerID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Delete(&model.CartItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}

// --- Mapper Functions ---

// toCartItemDomain converts a GORM CartItemModel to a domain CartItem entity.
func toCartItemDomain(data *model.CartItemModel) *entity.CartItem {
	if data == nil {
		return nil
	}

	return &entity.CartItem{
		ID:          data.ID,
		CustomerID:  data.CustomerID,
		VariantID:   data.VariantID,
		ProductID:   data.ProductID,
		Name:        data.Name,
		Image:       data.Image,
		UnitPrice:   data.UnitPrice,
		Quantity:    data.Quantity,
		MaxQuantity: data.MaxQuantity,
		Options:     data.Options,
		Position:    data.Position,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromCartItemDomain converts a domain CartItem entity to a GORM CartItemModel.
func fromCartItemDomain(data *entity.CartItem) *model.CartItemModel {
	if data == nil {
		return nil
	}

	return &model.CartItemModel{
		ID:          data.ID,
		CustomerID:  data.CustomerID,
		VariantID:   data.VariantID,
		ProductID:   data.ProductID,
		Name:        data.Name,
		Image:       data.Image,
		UnitPrice:   data.UnitPrice,
		Quantity:    data.Quantity,
		MaxQuantity: data.MaxQuantity,
		Options:     data.Options,
		Position:    data.Position,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
