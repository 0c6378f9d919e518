// Package service declares the domain-level contracts implemented by infra.
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"storefront/internal/domain/entity"
)

// PlaceOrderItem is one line of the order-placement call.
type PlaceOrderItem struct {
	VariantID uuid.UUID       `json:"variant_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// PlaceOrderRequest is the input of the external atomic order-creation call.
// Client-side amounts are advisory; the service validates stock and price
// independently.
type PlaceOrderRequest struct {
	StoreID           string             `json:"store_id"`
	CustomerID        uuid.UUID          `json:"customer_id"`
	Status            entity.OrderStatus `json:"status"` // Always "pending" at creation.
	Subtotal          decimal.Decimal    `json:"subtotal"`
	Shipping          decimal.Decimal    `json:"shipping"`
	Tax               decimal.Decimal    `json:"tax"`
	Discount          decimal.Decimal    `json:"discount"`
	PointsDiscount    decimal.Decimal    `json:"points_discount"`
	Total             decimal.Decimal    `json:"total"`
	ShippingAddressID *uuid.UUID         `json:"shipping_address_id,omitempty"`
	BillingAddressID  *uuid.UUID         `json:"billing_address_id,omitempty"`
	CouponCodes       []string           `json:"coupon_codes,omitempty"`
	LoyaltyPointsUsed int                `json:"loyalty_points_used"`
	Notes             entity.OrderNotes  `json:"notes"`
	Tags              []string           `json:"tags"`
	Items             []PlaceOrderItem   `json:"items"`
}

// PlaceOrderResult is the echo of the created order.
type PlaceOrderResult struct {
	OrderID uuid.UUID       `json:"order_id"`
	Total   decimal.Decimal `json:"total"`
}

// OrderRejectedError carries the reason the order service explicitly refused
// to create the order (server-side stock conflict, invalid customer, ...).
// Transport-level failures are returned as plain wrapped errors instead.
type OrderRejectedError struct {
	StatusCode int
	Reason     string
}

// Error implements the error interface.
func (e *OrderRejectedError) Error() string {
	return fmt.Sprintf("order rejected (%d): %s", e.StatusCode, e.Reason)
}

// OrderGateway is the contract of the external atomic order-creation service:
// all items recorded or none, exactly one call per user-initiated action.
type OrderGateway interface {
	PlaceOrder(ctx context.Context, req *PlaceOrderRequest) (*PlaceOrderResult, error)
}
