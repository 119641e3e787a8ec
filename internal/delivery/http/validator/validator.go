// Package validator adapts go-playground/validator to echo's Validator hook.
package validator

import (
	"net/http"

	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validator wraps a single validator instance shared across requests.
type Validator struct {
	validate *playground.Validate
}

// New creates the echo validator backed by go-playground/validator.
func New() *Validator {
	return &Validator{validate: playground.New(playground.WithRequiredStructEnabled())}
}

// Validate implements echo.Validator. Struct tag violations surface as a
// 400 with the validator's message, handled by the error middleware.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
