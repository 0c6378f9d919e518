package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"
)

// catalogRepository implements the repository.CatalogRepository interface.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{
		db: db,
	}
}

// FindProductByID retrieves a product with its declared option schema.
func (repo *catalogRepository) FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// FindVariantByID retrieves a single variant.
func (repo *catalogRepository) FindVariantByID(ctx context.Context, id uuid.UUID) (*entity.Variant, error) {
	var variantM model.VariantModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&variantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVariantNotFound
		}

		return nil, errors.Wrap(err, "failed to find variant by ID")
	}

	return toVariantDomain(&variantM), nil
}

// FindVariantsByProduct retrieves all variants of a product in creation order.
func (repo *catalogRepository) FindVariantsByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Variant, error) {
	var variantModels []*model.VariantModel

	if err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at ASC").
		Find(&variantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find variants by product")
	}

	variants := make([]*entity.Variant, 0, len(variantModels))
	for _, variantM := range variantModels {
		variants = append(variants, toVariantDomain(variantM))
	}

	return variants, nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:             data.ID,
		Name:           data.Name,
		Images:         data.Images,
		BasePrice:      data.BasePrice,
		Options:        data.Options,
		TracksQuantity: data.TracksQuantity,
		Active:         data.Active,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// toVariantDomain converts a GORM VariantModel to a domain Variant entity.
func toVariantDomain(data *model.VariantModel) *entity.Variant {
	if data == nil {
		return nil
	}

	return &entity.Variant{
		ID:             data.ID,
		ProductID:      data.ProductID,
		Price:          data.Price,
		CompareAtPrice: data.CompareAtPrice,
		PointsPrice:    data.PointsPrice,
		Quantity:       data.Quantity,
		Options:        data.Options,
		Active:         data.Active,
	}
}
