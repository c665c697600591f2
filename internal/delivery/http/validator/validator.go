// Package validator adapts go-playground/validator to echo's Validator hook.
package validator

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator wraps a validator instance for echo.
type CustomValidator struct {
	validator *validator.Validate
}

// New creates the validator used by the echo servers.
func New() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate runs struct validation and converts failures into a 422 response.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	return nil
}
