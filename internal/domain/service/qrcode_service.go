package service

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// QRCodeService generates the payment-reference QR code shown on the
// bank-transfer payment step for a placed order.
type QRCodeService interface {
	// GenerateOrderPaymentQR renders a PNG QR code embedding the order id and
	// payable total.
	GenerateOrderPaymentQR(orderID uuid.UUID, total decimal.Decimal) ([]byte, error)
}
