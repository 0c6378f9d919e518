package impl

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
	}
}

// RegisterDevice registers a new device or updates an existing one
func (s *deviceService) RegisterDevice(ctx context.Context, customerID uuid.UUID, info *usecase.DeviceInfo) (*entity.CustomerDevice, error) {
	devices, err := s.deviceRepo.FindDevicesByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find devices by customer: %w", err)
	}

	// Look for existing device with same device_id
	for _, device := range devices {
		if device.DeviceID == info.DeviceID {
			if err := s.deviceRepo.UpdateFCMToken(ctx, device.ID, info.FCMToken); err != nil {
				return nil, fmt.Errorf("failed to update FCM token: %w", err)
			}
			device.FCMToken = info.FCMToken
			device.IsActive = true

			return device, nil
		}
	}

	device := &entity.CustomerDevice{
		ID:         uuid.New(),
		CustomerID: customerID,
		FCMToken:   info.FCMToken,
		DeviceID:   info.DeviceID,
		Platform:   info.Platform,
		IsActive:   true,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := s.deviceRepo.CreateDevice(ctx, device); err != nil {
		return nil, fmt.Errorf("failed to create device: %w", err)
	}

	return device, nil
}
