package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order. After creation the status is
// owned entirely by the external order service; this engine never advances it.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusPaid       OrderStatus = "paid"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// OrderItem is one purchased line within an order.
type OrderItem struct {
	VariantID uuid.UUID       `json:"variant_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`      // Unit price carried from the cart snapshot.
	LineTotal decimal.Decimal `json:"line_total"` // Price times quantity.
}

// VATInvoice carries the government uniform-invoice data attached to an order.
type VATInvoice struct {
	Type      string `json:"type"`                 // "personal", "company" or "carrier".
	BuyerName string `json:"buyer_name,omitempty"` // Company name for company invoices.
	TaxID     string `json:"tax_id,omitempty"`     // Unified business number for company invoices.
	Carrier   string `json:"carrier,omitempty"`    // Mobile carrier barcode for carrier invoices.
}

// OrderNotes is the free-form block serialized into the order-placement call.
type OrderNotes struct {
	Message       string      `json:"message,omitempty"`
	VATInvoice    *VATInvoice `json:"vat_invoice,omitempty"`
	PaymentMethod string      `json:"payment_method,omitempty"`
}

// Order mirrors what the external order service created. Amounts are echoes of
// the advisory client-side computation; the service validates independently.
type Order struct {
	ID                uuid.UUID       `json:"id"`
	Status            OrderStatus     `json:"status"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	Shipping          decimal.Decimal `json:"shipping"`
	Tax               decimal.Decimal `json:"tax"`
	Discount          decimal.Decimal `json:"discount"`        // Coupon discount.
	PointsDiscount    decimal.Decimal `json:"points_discount"` // Discount from redeemed loyalty points.
	Total             decimal.Decimal `json:"total"`
	ShippingAddressID *uuid.UUID      `json:"shipping_address_id,omitempty"` // Nil when the cart has no physical items.
	BillingAddressID  *uuid.UUID      `json:"billing_address_id,omitempty"`
	PaymentMethod     string          `json:"payment_method,omitempty"`
	CouponCodes       []string        `json:"coupon_codes,omitempty"`
	LoyaltyPointsUsed int             `json:"loyalty_points_used"`
	Notes             OrderNotes      `json:"notes"`
	Tags              []string        `json:"tags"`
	Items             []OrderItem     `json:"items"`
	CreatedAt         time.Time       `json:"created_at"`
}
