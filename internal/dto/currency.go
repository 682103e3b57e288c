package dto

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var currencyCodePattern = regexp.MustCompile(`^[A-Za-z]{3}$`)

// ValidateCurrencyCode backs the "currency" binding tag: three ASCII letters, any case.
func ValidateCurrencyCode(fl validator.FieldLevel) bool {
	return currencyCodePattern.MatchString(strings.TrimSpace(fl.Field().String()))
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	// Message is the user-facing text for the error kind.
	Message string `json:"message,omitempty"`
}
