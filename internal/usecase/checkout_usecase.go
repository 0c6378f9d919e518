package usecase

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"storefront/internal/domain/entity"
)

// NextStep tells the client where to route the customer after an order is created.
type NextStep string

const (
	// NextStepPayment routes to the payment-collection step (total > 0).
	NextStepPayment NextStep = "payment"
	// NextStepConfirmation routes directly to the order-confirmation step (total == 0).
	NextStepConfirmation NextStep = "confirmation"
)

// CheckoutInput is the customer's checkout submission. VariantIDs selects the
// cart subset carried into this checkout; later cart edits on other items do
// not affect the order.
type CheckoutInput struct {
	VariantIDs        []uuid.UUID        `json:"variant_ids" validate:"required,min=1"`
	ShippingAddressID *uuid.UUID         `json:"shipping_address_id,omitempty"`
	BillingAddressID  *uuid.UUID         `json:"billing_address_id,omitempty"`
	PaymentMethod     string             `json:"payment_method,omitempty"`
	CouponCodes       []string           `json:"coupon_codes,omitempty"`
	LoyaltyPoints     int                `json:"loyalty_points" validate:"gte=0"`
	Message           string             `json:"message,omitempty"`
	VATInvoice        *entity.VATInvoice `json:"vat_invoice,omitempty"`
}

// CheckoutResult reports the created order and where to route next.
type CheckoutResult struct {
	OrderID  uuid.UUID       `json:"order_id"`
	Total    decimal.Decimal `json:"total"`
	NextStep NextStep        `json:"next_step"`
}

// CheckoutUsecase defines the interface for the place-order workflow
type CheckoutUsecase interface {
	// PlaceOrder runs the end-to-end checkout: classify the selected items,
	// validate required inputs, compute amounts, call the external order
	// service exactly once, and reconcile the cart on success. A second call
	// for the same customer while one is outstanding is rejected.
	PlaceOrder(ctx context.Context, customerID uuid.UUID, input *CheckoutInput) (*CheckoutResult, error)

	// PaymentQR renders the payment-reference QR code for a placed order.
	PaymentQR(ctx context.Context, orderID uuid.UUID, total decimal.Decimal) ([]byte, error)

	// UploadPaymentSlip stores a bank-transfer slip for a placed order and
	// returns the storage key.
	UploadPaymentSlip(ctx context.Context, orderID uuid.UUID, filename, contentType string, content io.Reader) (string, error)
}
