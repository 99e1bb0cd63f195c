// Package validator wires go-playground/validator into echo's Validator slot.
package validator

import (
	"github.com/go-playground/validator/v10"
)

// EchoValidator adapts a validator.Validate for echo.Echo.Validator.
type EchoValidator struct {
	validate *validator.Validate
}

// New builds the validator used by every request binding.
func New() *EchoValidator {
	return &EchoValidator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *EchoValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
