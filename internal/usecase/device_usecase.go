package usecase

import (
	"context"

	"github.com/google/uuid"

	"storefront/internal/domain/entity"
)

// DeviceInfo carries a client device registration for push notifications.
type DeviceInfo struct {
	FCMToken string `json:"fcm_token" validate:"required"`
	DeviceID string `json:"device_id" validate:"required"`
	Platform string `json:"platform" validate:"required,oneof=ios android"`
}

// DeviceUsecase defines the interface for device registration use cases
type DeviceUsecase interface {
	// RegisterDevice creates a registration or refreshes the FCM token of an
	// existing one (matched by device id).
	RegisterDevice(ctx context.Context, customerID uuid.UUID, info *DeviceInfo) (*entity.CustomerDevice, error)
}
