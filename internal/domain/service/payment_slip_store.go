package service

import (
	"context"
	"io"

	"github.com/google/uuid"
)

// PaymentSlipStore persists customer-uploaded bank-transfer slips for a
// placed order and returns the storage key of the stored object.
type PaymentSlipStore interface {
	Save(ctx context.Context, orderID uuid.UUID, filename, contentType string, content io.Reader) (string, error)
}
