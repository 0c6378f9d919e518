package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"
)

// eventRepository implements the repository.EventRepository interface.
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository(db *gorm.DB) repository.EventRepository {
	return &eventRepository{
		db: db,
	}
}

// ExistsForProduct reports whether an event record is attached to the product.
func (repo *eventRepository) ExistsForProduct(ctx context.Context, productID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.EventModel{}).
		Where("product_id = ?", productID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to count events for product")
	}

	return count > 0, nil
}
