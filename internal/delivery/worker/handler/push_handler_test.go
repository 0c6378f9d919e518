package handler

import (
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
)

func newPushHandler(t *testing.T) (*PushHandler, *mockSvc.MockNotificationService, *mockRepo.MockDeviceRepository) {
	t.Helper()

	notificationSvc := mockSvc.NewMockNotificationService(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	handler := NewPushHandler(PushHandlerParams{
		Config:          &config.Config{},
		Logger:          slog.New(slog.DiscardHandler),
		NotificationSvc: notificationSvc,
		DeviceRepo:      deviceRepo,
	})

	return handler, notificationSvc, deviceRepo
}

func buildPushRequest(t *testing.T, event *service.OrderPlacedEvent) *http.Request {
	t.Helper()

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	pushMsg := PubSubMessage{}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(payload)
	pushMsg.Message.MessageID = event.OrderID
	pushMsg.Subscription = "projects/test/subscriptions/order-placed"

	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func TestPushHandler_HandlePush_SendsToAllDevices(t *testing.T) {
	handler, notificationSvc, deviceRepo := newPushHandler(t)

	customerID := uuid.New()
	event := &service.OrderPlacedEvent{
		OrderID:    uuid.New().String(),
		CustomerID: customerID.String(),
		Total:      "600",
		Tags:       []string{"web"},
	}

	devices := []*entity.CustomerDevice{
		{ID: uuid.New(), CustomerID: customerID, FCMToken: "token-a", IsActive: true},
		{ID: uuid.New(), CustomerID: customerID, FCMToken: "token-b", IsActive: true},
	}

	deviceRepo.EXPECT().
		FindDevicesByCustomer(mock.Anything, customerID).
		Return(devices, nil)
	notificationSvc.EXPECT().
		SendBatchNotification(mock.Anything, []string{"token-a", "token-b"}, "訂單成立通知", "您的訂單已成立,金額 600 元", map[string]string{
			"order_id":    event.OrderID,
			"customer_id": event.CustomerID,
			"total":       "600",
		}).
		Return(2, 0, nil, nil)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(buildPushRequest(t, event), rec)

	err := handler.HandlePush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_NoDevicesIsSuccess(t *testing.T) {
	handler, _, deviceRepo := newPushHandler(t)

	customerID := uuid.New()
	event := &service.OrderPlacedEvent{
		OrderID:    uuid.New().String(),
		CustomerID: customerID.String(),
		Total:      "600",
	}

	deviceRepo.EXPECT().
		FindDevicesByCustomer(mock.Anything, customerID).
		Return(nil, nil)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(buildPushRequest(t, event), rec)

	err := handler.HandlePush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_RepositoryErrorRetries(t *testing.T) {
	handler, _, deviceRepo := newPushHandler(t)

	customerID := uuid.New()
	event := &service.OrderPlacedEvent{
		OrderID:    uuid.New().String(),
		CustomerID: customerID.String(),
		Total:      "600",
	}

	deviceRepo.EXPECT().
		FindDevicesByCustomer(mock.Anything, customerID).
		Return(nil, errors.New("database unavailable"))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(buildPushRequest(t, event), rec)

	err := handler.HandlePush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_HandlePush_BadCustomerIDSwallowed(t *testing.T) {
	handler, _, _ := newPushHandler(t)

	event := &service.OrderPlacedEvent{
		OrderID:    uuid.New().String(),
		CustomerID: "not-a-uuid",
		Total:      "600",
	}

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(buildPushRequest(t, event), rec)

	// A permanently malformed event must not loop forever in Pub/Sub.
	err := handler.HandlePush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_InvalidBase64(t *testing.T) {
	handler, _, _ := newPushHandler(t)

	pushMsg := PubSubMessage{}
	pushMsg.Message.Data = "%%% not base64 %%%"
	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err = handler.HandlePush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_HandlePush_DeactivatesInvalidTokens(t *testing.T) {
	handler, notificationSvc, deviceRepo := newPushHandler(t)

	customerID := uuid.New()
	event := &service.OrderPlacedEvent{
		OrderID:    uuid.New().String(),
		CustomerID: customerID.String(),
		Total:      "600",
	}

	staleDevice := &entity.CustomerDevice{ID: uuid.New(), CustomerID: customerID, FCMToken: "stale-token", IsActive: true}
	freshDevice := &entity.CustomerDevice{ID: uuid.New(), CustomerID: customerID, FCMToken: "fresh-token", IsActive: true}

	deviceRepo.EXPECT().
		FindDevicesByCustomer(mock.Anything, customerID).
		Return([]*entity.CustomerDevice{staleDevice, freshDevice}, nil)
	notificationSvc.EXPECT().
		SendBatchNotification(mock.Anything, []string{"stale-token", "fresh-token"}, "訂單成立通知", "您的訂單已成立,金額 600 元", map[string]string{
			"order_id":    event.OrderID,
			"customer_id": event.CustomerID,
			"total":       "600",
		}).
		Return(1, 1, []string{"stale-token"}, nil)
	deviceRepo.EXPECT().
		DeactivateDevice(mock.Anything, staleDevice.ID).
		Return(nil)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(buildPushRequest(t, event), rec)

	err := handler.HandlePush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_PrepareNotificationContent_RewardTag(t *testing.T) {
	handler, _, _ := newPushHandler(t)

	event := &service.OrderPlacedEvent{
		OrderID:    uuid.New().String(),
		CustomerID: uuid.New().String(),
		Total:      "0",
		Tags:       []string{"reward", "web"},
	}

	title, body, data := handler.prepareNotificationContent(event)
	assert.Equal(t, "兌換成功通知", title)
	assert.Equal(t, "您的獎勵兌換訂單已成立", body)
	assert.Equal(t, event.OrderID, data["order_id"])
}

func TestIsRetryableError(t *testing.T) {
	plain := errors.New("permanent failure")
	assert.False(t, isRetryableError(plain))

	wrapped := newRetryableError(plain)
	assert.True(t, isRetryableError(wrapped))
	assert.True(t, isRetryableError(errors.Wrap(wrapped, "outer context")))
}
