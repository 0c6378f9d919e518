package handler

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler holds dependencies for cart-related handlers
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// AddItemRequest represents the request body for adding a cart item
type AddItemRequest struct {
	ProductID  uuid.UUID            `json:"product_id" validate:"required"`
	Selections []entity.OptionValue `json:"selections"`
}

// UpdateQuantityRequest represents the request body for changing a line quantity
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

// GetCart returns the customer's cart with item count and subtotal
func (h *CartHandler) GetCart(c echo.Context) error {
	customerID, err := getCustomerID(c)
	if err != nil {
		return err
	}

	summary, err := h.cartUC.GetCart(c.Request().Context(), customerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary, "Cart retrieved successfully")
}

// AddItem resolves the selections and adds the variant to the cart
func (h *CartHandler) AddItem(c echo.Context) error {
	customerID, err := getCustomerID(c)
	if err != nil {
		return err
	}

	var req AddItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	item, err := h.cartUC.AddItem(c.Request().Context(), customerID, &usecase.AddItemInput{
		ProductID:  req.ProductID,
		Selections: req.Selections,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, item, "Item added to cart")
}

// UpdateQuantity sets the quantity of the line identified by variant ID
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	customerID, err := getCustomerID(c)
	if err != nil {
		return err
	}

	variantID, err := uuid.Parse(c.Param("variantId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid variant ID")
	}

	var req UpdateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	item, err := h.cartUC.UpdateQuantity(c.Request().Context(), customerID, variantID, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item, "Quantity updated successfully")
}

// RemoveItem deletes the line identified by variant ID
func (h *CartHandler) RemoveItem(c echo.Context) error {
	customerID, err := getCustomerID(c)
	if err != nil {
		return err
	}

	variantID, err := uuid.Parse(c.Param("variantId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid variant ID")
	}

	if err := h.cartUC.RemoveItem(c.Request().Context(), customerID, variantID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Item removed"}, "Item removed successfully")
}

// Clear empties the customer's cart
func (h *CartHandler) Clear(c echo.Context) error {
	customerID, err := getCustomerID(c)
	if err != nil {
		return err
	}

	if err := h.cartUC.Clear(c.Request().Context(), customerID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Cart cleared"}, "Cart cleared successfully")
}
