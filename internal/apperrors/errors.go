package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrRatesUnavailable indicates that no usable rate table could be fetched.
// Recoverable: the next poll cycle may succeed.
var ErrRatesUnavailable = errors.New("exchange rates unavailable")

// ErrInvalidExchangeRate indicates the requested pair is missing from the
// current rate table or carries a zero rate.
var ErrInvalidExchangeRate = errors.New("invalid exchange rate")

// ErrInsufficientBalance indicates the source balance cannot cover the amount.
var ErrInsufficientBalance = errors.New("insufficient balance")

// ErrInvalidAmount indicates an amount that is not a positive number.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrStoreFailure indicates the underlying ledger store failed. It is fatal
// for the in-flight operation and is never retried by the core.
var ErrStoreFailure = errors.New("store failure")

// AppError carries an HTTP status alongside a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewNotFoundError wraps ErrNotFound with a message.
func NewNotFoundError(message string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, message)
}

// NewStoreError wraps a persistence failure so callers can match ErrStoreFailure.
// Domain errors raised inside a store (e.g. ErrInsufficientBalance) pass through untouched.
func NewStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	if IsDomainError(err) || errors.Is(err, ErrStoreFailure) {
		return err
	}
	return fmt.Errorf("%w: %s: %v", ErrStoreFailure, op, err)
}

// IsDomainError reports whether err is one of the recoverable error kinds.
func IsDomainError(err error) bool {
	return errors.Is(err, ErrRatesUnavailable) ||
		errors.Is(err, ErrInvalidExchangeRate) ||
		errors.Is(err, ErrInsufficientBalance) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrValidation)
}

// HTTPStatus maps an error to the status code the API responds with.
func HTTPStatus(err error) int {
	var appErr *AppError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrInvalidExchangeRate), errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInsufficientBalance):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrRatesUnavailable):
		return http.StatusServiceUnavailable
	case errors.As(err, &appErr) && appErr.Code != 0:
		return appErr.Code
	default:
		return http.StatusInternalServerError
	}
}

// UserMessage returns the message shown to a user for each error kind.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidAmount):
		return "Please enter a valid positive amount"
	case errors.Is(err, ErrInvalidExchangeRate):
		return "Exchange rate for this currency pair is not available"
	case errors.Is(err, ErrInsufficientBalance):
		return "This Currency isn't enough for convert"
	case errors.Is(err, ErrRatesUnavailable):
		return "Exchange rates are currently unavailable, retrying shortly"
	case errors.Is(err, ErrNotFound):
		return "Requested item was not found"
	case errors.Is(err, ErrValidation):
		return "Request is invalid"
	default:
		return "Something went wrong while saving your exchange"
	}
}
