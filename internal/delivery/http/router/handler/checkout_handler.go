package handler

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"
)

// CheckoutHandlerParams holds dependencies for CheckoutHandler, injected by Fx.
type CheckoutHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
	Logger     *slog.Logger
}

// CheckoutHandler holds dependencies for checkout-related handlers
type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUsecase
	logger     *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler
func NewCheckoutHandler(params CheckoutHandlerParams) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUC: params.CheckoutUC,
		logger:     params.Logger,
	}
}

// PlaceOrder runs the checkout for the selected cart subset
func (h *CheckoutHandler) PlaceOrder(c echo.Context) error {
	customerID, err := getCustomerID(c)
	if err != nil {
		return err
	}

	var req usecase.CheckoutInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.checkoutUC.PlaceOrder(c.Request().Context(), customerID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result, "Order placed successfully")
}

// PaymentQR streams the payment-reference QR code PNG for a placed order.
// The total comes from the client and is only embedded in the QR payload for
// display; the order service verifies the received payment independently.
func (h *CheckoutHandler) PaymentQR(c echo.Context) error {
	if _, err := getCustomerID(c); err != nil {
		return err
	}

	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	total, err := decimal.NewFromString(c.QueryParam("total"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid total amount")
	}

	png, err := h.checkoutUC.PaymentQR(c.Request().Context(), orderID, total)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// UploadPaymentSlip stores an uploaded bank-transfer slip for a placed order
func (h *CheckoutHandler) UploadPaymentSlip(c echo.Context) error {
	if _, err := getCustomerID(c); err != nil {
		return err
	}

	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	fileHeader, err := c.FormFile("slip")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Missing slip file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Unreadable slip file")
	}
	defer file.Close()

	key, err := h.checkoutUC.UploadPaymentSlip(
		c.Request().Context(),
		orderID,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"key": key}, "Payment slip uploaded successfully")
}
