package repositories

import (
	"context"

	"github.com/SscSPs/currency_exchanger/internal/core/domain"
)

// RateSource fetches a fresh rate table for a base currency.
// Implementations do not retry; failures wrap apperrors.ErrRatesUnavailable.
type RateSource interface {
	FetchRates(ctx context.Context, baseCurrency string) (*domain.RateTable, error)
}
