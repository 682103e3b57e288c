package apperrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SscSPs/currency_exchanger/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"invalid amount", fmt.Errorf("%w: -1", apperrors.ErrInvalidAmount), http.StatusBadRequest},
		{"invalid rate", apperrors.ErrInvalidExchangeRate, http.StatusBadRequest},
		{"not found", apperrors.NewNotFoundError("balance USD"), http.StatusNotFound},
		{"insufficient", apperrors.ErrInsufficientBalance, http.StatusUnprocessableEntity},
		{"rates", apperrors.ErrRatesUnavailable, http.StatusServiceUnavailable},
		{"store", apperrors.NewStoreError("append", errors.New("disk full")), http.StatusInternalServerError},
		{"app error", apperrors.NewAppError(http.StatusConflict, "conflict", nil), http.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apperrors.HTTPStatus(tt.err))
		})
	}
}

func TestNewStoreError(t *testing.T) {
	assert.Nil(t, apperrors.NewStoreError("op", nil))

	err := apperrors.NewStoreError("debit", errors.New("connection reset"))
	assert.ErrorIs(t, err, apperrors.ErrStoreFailure)
	assert.Contains(t, err.Error(), "debit")

	domainErr := fmt.Errorf("%w: USD", apperrors.ErrInsufficientBalance)
	assert.Same(t, domainErr, apperrors.NewStoreError("debit", domainErr))
}

func TestUserMessage_DistinctPerKind(t *testing.T) {
	kinds := []error{
		apperrors.ErrRatesUnavailable,
		apperrors.ErrInvalidExchangeRate,
		apperrors.ErrInsufficientBalance,
		apperrors.ErrInvalidAmount,
		apperrors.ErrStoreFailure,
	}
	seen := map[string]bool{}
	for _, k := range kinds {
		msg := apperrors.UserMessage(k)
		assert.NotEmpty(t, msg)
		assert.False(t, seen[msg], "duplicate message %q", msg)
		seen[msg] = true
	}
	assert.Empty(t, apperrors.UserMessage(nil))
}
