// Package validator plugs go-playground/validator into Echo's binding flow.
package validator

import (
	"github.com/go-playground/validator/v10"

	domainerrors "storefront/internal/domain/errors"
)

// CustomValidator wraps the validator instance used by Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// New creates the validator registered on the Echo server.
func New() *CustomValidator {
	return &CustomValidator{
		validator: validator.New(),
	}
}

// Validate checks the struct tags of a bound request payload.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
