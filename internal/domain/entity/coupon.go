package entity

import (
	"github.com/shopspring/decimal"
)

// CouponType enumerates the supported coupon discount strategies.
type CouponType string

const (
	// CouponFixed applies a fixed monetary discount capped at the subtotal.
	CouponFixed CouponType = "fixed"
	// CouponPercentage applies a percentage-based discount to the subtotal.
	CouponPercentage CouponType = "percentage"
)

// Coupon is a redeemable discount code. Only the total discount it yields for
// a given subtotal is modeled here; campaign rules live with the coupon service.
type Coupon struct {
	Code   string          `json:"code"`   // The redemption code entered by the customer.
	Type   CouponType      `json:"type"`   // Discount strategy.
	Value  decimal.Decimal `json:"value"`  // Fixed amount, or percentage in [0, 100].
	Active bool            `json:"active"` // Whether the coupon is currently redeemable.
}

// DiscountFor returns the discount this coupon yields against the subtotal,
// never exceeding the subtotal.
func (c *Coupon) DiscountFor(subtotal decimal.Decimal) decimal.Decimal {
	var discount decimal.Decimal
	switch c.Type {
	case CouponPercentage:
		discount = subtotal.Mul(c.Value).Div(decimal.NewFromInt(100))
	case CouponFixed:
		discount = c.Value
	default:
		return decimal.Zero
	}

	if discount.GreaterThan(subtotal) {
		return subtotal
	}
	if discount.IsNegative() {
		return decimal.Zero
	}

	return discount
}
