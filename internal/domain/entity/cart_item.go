package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UnlimitedMaxQuantity marks a line item whose product does not track stock.
const UnlimitedMaxQuantity = 1<<31 - 1

// CartItem is one row of a customer's cart: a chosen variant, a price snapshot
// taken at add time, and a quantity bounded by [1, MaxQuantity]. Line items are
// keyed by variant identity; adding the same variant again increases quantity.
type CartItem struct {
	ID          uuid.UUID       `json:"id"`           // The unique identifier for the line item.
	CustomerID  uuid.UUID       `json:"customer_id"`  // The owning customer.
	VariantID   uuid.UUID       `json:"variant_id"`   // The chosen SKU; uniqueness key within a cart.
	ProductID   uuid.UUID       `json:"product_id"`   // The variant's owning product.
	Name        string          `json:"name"`         // Display-name snapshot.
	Image       string          `json:"image"`        // Image URL snapshot.
	UnitPrice   decimal.Decimal `json:"unit_price"`   // Price at time of add; not re-fetched.
	Quantity    int             `json:"quantity"`     // Units, always within [1, MaxQuantity].
	MaxQuantity int             `json:"max_quantity"` // Stock bound when tracked, UnlimitedMaxQuantity otherwise.
	Options     []OptionValue   `json:"options"`      // Selected option values snapshot for display.
	Position    int             `json:"position"`     // Insertion order within the cart.
	CreatedAt   time.Time       `json:"created_at"`   // Timestamp of when the line item was created.
	UpdatedAt   time.Time       `json:"updated_at"`   // Timestamp of the last modification.
}

// LineTotal returns unit price times quantity.
func (i *CartItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// ClampQuantity forces the quantity back into [1, MaxQuantity]. Every mutation
// re-clamps rather than trusting the caller's delta.
func (i *CartItem) ClampQuantity() {
	if i.Quantity < 1 {
		i.Quantity = 1
	}
	if i.MaxQuantity >= 1 && i.Quantity > i.MaxQuantity {
		i.Quantity = i.MaxQuantity
	}
}

// CartSummary aggregates a customer's line items with derived totals.
type CartSummary struct {
	Items     []*CartItem     `json:"items"`
	ItemCount int             `json:"item_count"` // Sum of quantities.
	Subtotal  decimal.Decimal `json:"subtotal"`   // Sum of line totals.
}

// SummarizeCart computes the derived aggregates over the given line items.
func SummarizeCart(items []*CartItem) *CartSummary {
	summary := &CartSummary{
		Items:    items,
		Subtotal: decimal.Zero,
	}
	for _, item := range items {
		summary.ItemCount += item.Quantity
		summary.Subtotal = summary.Subtotal.Add(item.LineTotal())
	}

	return summary
}
