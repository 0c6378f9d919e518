package errors

import (
	"net/http"

	"storefront/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Variant/catalog errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"找不到該商品",
		"",
	)

	ErrVariantNotFound = NewBaseError(
		http.StatusNotFound,
		"VARIANT_NOT_FOUND",
		"找不到該商品規格",
		"",
	)

	ErrVariantNotResolved = NewBaseError(
		http.StatusBadRequest,
		"VARIANT_NOT_RESOLVED",
		"請先選擇完整的商品規格",
		"",
	)

	ErrVariantOutOfStock = NewBaseError(
		http.StatusConflict,
		"VARIANT_OUT_OF_STOCK",
		"該商品規格已售完",
		"",
	)

	// Cart errors
	ErrCartItemNotFound = NewBaseError(
		http.StatusNotFound,
		"CART_ITEM_NOT_FOUND",
		"找不到購物車品項",
		"",
	)

	ErrInvalidQuantity = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QUANTITY",
		"商品數量必須大於 0",
		"",
	)

	ErrCartEmpty = NewBaseError(
		http.StatusBadRequest,
		"CART_EMPTY",
		"購物車內沒有可結帳的品項",
		"",
	)

	// Checkout validation errors
	ErrPaymentMethodRequired = NewBaseError(
		http.StatusBadRequest,
		"PAYMENT_METHOD_REQUIRED",
		"請選擇付款方式",
		"",
	)

	ErrDeliveryAddressRequired = NewBaseError(
		http.StatusBadRequest,
		"DELIVERY_ADDRESS_REQUIRED",
		"實體商品需要選擇收件地址",
		"",
	)

	ErrNegativePrice = NewBaseError(
		http.StatusBadRequest,
		"NEGATIVE_PRICE",
		"商品價格異常，請重新整理購物車",
		"",
	)

	ErrCheckoutInProgress = NewBaseError(
		http.StatusConflict,
		"CHECKOUT_IN_PROGRESS",
		"訂單正在處理中，請勿重複送出",
		"",
	)

	// Discount errors
	ErrCouponInvalid = NewBaseError(
		http.StatusBadRequest,
		"COUPON_INVALID",
		"優惠券無效或已過期",
		"",
	)

	ErrInsufficientPoints = NewBaseError(
		http.StatusBadRequest,
		"INSUFFICIENT_POINTS",
		"點數不足",
		"",
	)

	// Order placement errors
	ErrOrderServiceUnreachable = NewBaseError(
		http.StatusBadGateway,
		"ORDER_SERVICE_UNREACHABLE",
		"訂單服務暫時無法連線，請稍後再試",
		"",
	)

	ErrOrderCreationFailed = NewBaseError(
		http.StatusUnprocessableEntity,
		"ORDER_CREATION_FAILED",
		"訂單建立失敗",
		"",
	)

	ErrPaymentSlipUploadFailed = NewBaseError(
		http.StatusInternalServerError,
		"PAYMENT_SLIP_UPLOAD_FAILED",
		"付款憑證上傳失敗",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"輸入資料驗證失敗",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"資料庫交易失敗",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"系統內部錯誤",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"存取被拒絕",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"找不到該資源",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "資料庫執行失敗"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
