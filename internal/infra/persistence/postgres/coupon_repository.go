package postgres

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"
)

// couponRepository implements the repository.CouponRepository interface.
type couponRepository struct {
	db *gorm.DB
}

// NewCouponRepository is the constructor for couponRepository.
func NewCouponRepository(db *gorm.DB) repository.CouponRepository {
	return &couponRepository{
		db: db,
	}
}

// FindByCode retrieves a coupon by its redemption code.
func (repo *couponRepository) FindByCode(ctx context.Context, code string) (*entity.Coupon, error) {
	var couponM model.CouponModel

	if err := repo.db.WithContext(ctx).
		Where("code = ?", code).
		First(&couponM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCouponNotFound
		}

		return nil, errors.Wrap(err, "failed to find coupon by code")
	}

	return &entity.Coupon{
		Code:   couponM.Code,
		Type:   entity.CouponType(couponM.Type),
		Value:  couponM.Value,
		Active: couponM.Active,
	}, nil
}
