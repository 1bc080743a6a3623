// Package validator adapts go-playground/validator to echo's Validator
// interface.
package validator

import (
	validatorv10 "github.com/go-playground/validator/v10"

	domainerrors "gather/internal/domain/errors"
)

// Validator wraps a shared validator instance.
type Validator struct {
	validate *validatorv10.Validate
}

// New builds the echo validator.
func New() *Validator {
	return &Validator{validate: validatorv10.New(validatorv10.WithRequiredStructEnabled())}
}

// Validate checks struct tags and maps failures onto the validation error.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return nil
}
