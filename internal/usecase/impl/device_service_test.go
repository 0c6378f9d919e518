package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/entity"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"
)

func TestDeviceService_RegisterDevice_New(t *testing.T) {
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(mockDeviceRepo)

	ctx := context.Background()
	customerID := uuid.New()

	mockDeviceRepo.EXPECT().
		FindDevicesByCustomer(ctx, customerID).
		Return(nil, nil)
	mockDeviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.CustomerDevice")).
		Return(nil)

	device, err := service.RegisterDevice(ctx, customerID, &usecase.DeviceInfo{
		FCMToken: "fcm-token-abc",
		DeviceID: "device-1",
		Platform: "ios",
	})
	require.NoError(t, err)
	assert.Equal(t, customerID, device.CustomerID)
	assert.Equal(t, "fcm-token-abc", device.FCMToken)
	assert.Equal(t, "device-1", device.DeviceID)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_RefreshesExistingToken(t *testing.T) {
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(mockDeviceRepo)

	ctx := context.Background()
	customerID := uuid.New()

	existing := &entity.CustomerDevice{
		ID:         uuid.New(),
		CustomerID: customerID,
		DeviceID:   "device-1",
		FCMToken:   "stale-token",
		Platform:   "android",
		IsActive:   false,
	}

	mockDeviceRepo.EXPECT().
		FindDevicesByCustomer(ctx, customerID).
		Return([]*entity.CustomerDevice{existing}, nil)
	mockDeviceRepo.EXPECT().
		UpdateFCMToken(ctx, existing.ID, "fresh-token").
		Return(nil)

	device, err := service.RegisterDevice(ctx, customerID, &usecase.DeviceInfo{
		FCMToken: "fresh-token",
		DeviceID: "device-1",
		Platform: "android",
	})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, device.ID)
	assert.Equal(t, "fresh-token", device.FCMToken)
	assert.True(t, device.IsActive)
}
