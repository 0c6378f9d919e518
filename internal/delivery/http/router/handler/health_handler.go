// Package handler contains the Echo HTTP handlers.
package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"storefront/internal/delivery/http/response"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// getCustomerID extracts the authenticated customer ID from the context.
func getCustomerID(c echo.Context) (uuid.UUID, error) {
	customerIDVal := c.Get("customerID")
	customerID, ok := customerIDVal.(uuid.UUID)
	if !ok {
		return uuid.Nil, response.Unauthorized(c, "INVALID_TOKEN", "Invalid customer ID in token")
	}

	return customerID, nil
}
