package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// ErrCouponNotFound is returned when a coupon code does not exist.
var ErrCouponNotFound = errors.New("coupon not found")

// CouponRepository provides lookup of coupon rules by their code.
type CouponRepository interface {
	// FindByCode retrieves a coupon by its redemption code.
	FindByCode(ctx context.Context, code string) (*entity.Coupon, error)
}
