// Package pricing contains the stateless discount and total computations for
// checkout. All functions are pure: identical inputs yield identical outputs,
// and they are re-run whenever the selected line items change.
package pricing

import (
	"github.com/shopspring/decimal"

	"storefront/internal/domain/entity"
)

// CouponDiscount sums each coupon's discount against the subtotal. The
// combined discount never exceeds the subtotal.
func CouponDiscount(subtotal decimal.Decimal, coupons []*entity.Coupon) decimal.Decimal {
	discount := decimal.Zero
	for _, coupon := range coupons {
		discount = discount.Add(coupon.DiscountFor(subtotal))
	}

	if discount.GreaterThan(subtotal) {
		return subtotal
	}

	return discount
}

// PointsDiscount converts a loyalty point count to a monetary amount at the
// configured point value. The caller clamps points to the customer's balance
// before calling.
func PointsDiscount(points int, pointValue decimal.Decimal) decimal.Decimal {
	if points <= 0 {
		return decimal.Zero
	}

	return decimal.NewFromInt(int64(points)).Mul(pointValue)
}

// Total computes the payable amount. Discounts are never allowed to push the
// total negative; the floor is zero.
func Total(subtotal, couponDiscount, pointsDiscount decimal.Decimal) decimal.Decimal {
	total := subtotal.Sub(couponDiscount).Sub(pointsDiscount)
	if total.IsNegative() {
		return decimal.Zero
	}

	return total
}
