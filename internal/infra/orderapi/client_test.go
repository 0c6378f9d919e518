package orderapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

func newTestClient(baseURL string) *Client {
	return New(&config.Config{
		Checkout: &config.CheckoutConfig{
			StoreID:         "store-001",
			OrderAPIBaseURL: baseURL,
			OrderAPIKey:     "test-key",
			OrderAPITimeout: 5 * time.Second,
		},
	})
}

func TestClient_PlaceOrder_Success(t *testing.T) {
	orderID := uuid.New()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "store-001", r.Header.Get("X-Store-Id"))

		var req service.PlaceOrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "store-001", req.StoreID)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"order_id": orderID.String(),
			"total":    "600",
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	result, err := client.PlaceOrder(context.Background(), &service.PlaceOrderRequest{
		StoreID:    "store-001",
		CustomerID: uuid.New(),
		Status:     entity.OrderStatusPending,
		Total:      decimal.NewFromInt(600),
	})
	require.NoError(t, err)
	assert.Equal(t, orderID, result.OrderID)
	assert.True(t, decimal.NewFromInt(600).Equal(result.Total))
}

func TestClient_PlaceOrder_RejectedWithMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "insufficient stock"})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.PlaceOrder(context.Background(), &service.PlaceOrderRequest{})

	var rejected *service.OrderRejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, http.StatusConflict, rejected.StatusCode)
	assert.Equal(t, "insufficient stock", rejected.Reason)
}

func TestClient_PlaceOrder_RejectedWithoutBodyFallsBackToStatusText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.PlaceOrder(context.Background(), &service.PlaceOrderRequest{})

	var rejected *service.OrderRejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, http.StatusText(http.StatusBadGateway), rejected.Reason)
}

func TestClient_PlaceOrder_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	server.Close() // Connection refused from here on.

	client := newTestClient(server.URL)

	_, err := client.PlaceOrder(context.Background(), &service.PlaceOrderRequest{})
	require.Error(t, err)

	var rejected *service.OrderRejectedError
	assert.False(t, errors.As(err, &rejected))
}

func TestClient_Balance(t *testing.T) {
	customerID := uuid.New()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/customers/"+customerID.String()+"/loyalty", r.URL.Path)
		assert.Empty(t, r.URL.Query().Get("refresh"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]int{"balance": 350})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	balance, err := client.Balance(context.Background(), customerID)
	require.NoError(t, err)
	assert.Equal(t, 350, balance)
}

func TestClient_RefreshBalance(t *testing.T) {
	customerID := uuid.New()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "true", r.URL.Query().Get("refresh"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]int{"balance": 200})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	balance, err := client.RefreshBalance(context.Background(), customerID)
	require.NoError(t, err)
	assert.Equal(t, 200, balance)
}
