// Package orderapi is the HTTP client for the external order and customer
// services. Order creation is atomic on the remote side; this client makes
// exactly one call per user-initiated action and never retries.
package orderapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"storefront/config"
	"storefront/internal/domain/service"
)

// Client talks to the external order service over HTTP. It implements both
// service.OrderGateway and service.LoyaltyService.
type Client struct {
	baseURL    string
	apiKey     string
	storeID    string
	httpClient *http.Client
}

// New creates a new order service client from the checkout configuration.
func New(cfg *config.Config) *Client {
	return &Client{
		baseURL: cfg.Checkout.OrderAPIBaseURL,
		apiKey:  cfg.Checkout.OrderAPIKey,
		storeID: cfg.Checkout.StoreID,
		httpClient: &http.Client{
			Timeout: cfg.Checkout.OrderAPITimeout,
		},
	}
}

// NewOrderGateway exposes the client as the domain's OrderGateway.
func NewOrderGateway(client *Client) service.OrderGateway {
	return client
}

// NewLoyaltyService exposes the client as the domain's LoyaltyService.
func NewLoyaltyService(client *Client) service.LoyaltyService {
	return client
}

type placeOrderResponse struct {
	OrderID uuid.UUID `json:"order_id"`
	Total   string    `json:"total"`
}

type errorResponse struct {
	Message string `json:"message"`
}

type balanceResponse struct {
	Balance int `json:"balance"`
}

// PlaceOrder submits the order-creation call. A non-2xx response with a
// parseable body becomes an OrderRejectedError; transport failures are
// returned as wrapped errors.
func (c *Client) PlaceOrder(ctx context.Context, req *service.PlaceOrderRequest) (*service.PlaceOrderResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal order request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build order request")
	}
	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(err, "failed to call order service")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read order service response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		reason := http.StatusText(resp.StatusCode)
		var errResp errorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			reason = errResp.Message
		}

		return nil, &service.OrderRejectedError{
			StatusCode: resp.StatusCode,
			Reason:     reason,
		}
	}

	var orderResp placeOrderResponse
	if err := json.Unmarshal(respBody, &orderResp); err != nil {
		return nil, errors.Wrap(err, "failed to decode order service response")
	}

	result := &service.PlaceOrderResult{
		OrderID: orderResp.OrderID,
		Total:   req.Total,
	}
	if orderResp.Total != "" {
		total, err := decimal.NewFromString(orderResp.Total)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse order total")
		}
		result.Total = total
	}

	return result, nil
}

// Balance returns the customer's current loyalty-point balance.
func (c *Client) Balance(ctx context.Context, customerID uuid.UUID) (int, error) {
	return c.fetchBalance(ctx, customerID, false)
}

// RefreshBalance re-fetches the balance after a points redemption.
func (c *Client) RefreshBalance(ctx context.Context, customerID uuid.UUID) (int, error) {
	return c.fetchBalance(ctx, customerID, true)
}

func (c *Client) fetchBalance(ctx context.Context, customerID uuid.UUID, refresh bool) (int, error) {
	url := fmt.Sprintf("%s/customers/%s/loyalty", c.baseURL, customerID)
	if refresh {
		url += "?refresh=true"
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, errors.Wrap(err, "failed to build loyalty request")
	}
	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return 0, errors.Wrap(err, "failed to call customer service")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, errors.Errorf("customer service returned non-success status: %d", resp.StatusCode)
	}

	var balanceResp balanceResponse
	if err := json.NewDecoder(resp.Body).Decode(&balanceResp); err != nil {
		return 0, errors.Wrap(err, "failed to decode loyalty balance response")
	}

	return balanceResp.Balance, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("X-Store-Id", c.storeID)
}
