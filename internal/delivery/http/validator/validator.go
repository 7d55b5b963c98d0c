// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	domainerrors "medvantage/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// requestValidator wraps a validator.Validate instance for Echo.
type requestValidator struct {
	validate *validator.Validate
}

// New creates the Echo request validator.
func New() *requestValidator {
	return &requestValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate checks the bound request struct against its validate tags.
func (v *requestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
