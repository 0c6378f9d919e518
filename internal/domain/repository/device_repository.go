package repository

import (
	"context"

	"github.com/google/uuid"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// ErrDeviceNotFound is returned when a device registration is not found.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository defines the interface for customer device registrations,
// used to deliver order push notifications.
type DeviceRepository interface {
	// CreateDevice persists a new device registration.
	CreateDevice(ctx context.Context, device *entity.CustomerDevice) error

	// FindDevicesByCustomer retrieves all active devices of a customer.
	FindDevicesByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.CustomerDevice, error)

	// UpdateFCMToken replaces the FCM token of an existing registration.
	UpdateFCMToken(ctx context.Context, id uuid.UUID, fcmToken string) error

	// DeactivateDevice marks a registration inactive (e.g., token rejected upstream).
	DeactivateDevice(ctx context.Context, id uuid.UUID) error
}
