package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/SscSPs/currency_exchanger/internal/apperrors"
	"github.com/SscSPs/currency_exchanger/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_exchanger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_exchanger/internal/core/ports/services"
	"golang.org/x/sync/singleflight"
)

// RateService owns the current rate snapshot. Readers always see one whole
// table; a refresh swaps the pointer only after the new table is complete.
type RateService struct {
	BaseService
	source  portsrepo.RateSource
	current atomic.Pointer[domain.RateTable]
	group   singleflight.Group
}

var _ portssvc.ExchangeRateSvcFacade = (*RateService)(nil)

// NewRateService creates a RateService with no snapshot loaded.
func NewRateService(source portsrepo.RateSource) *RateService {
	return &RateService{source: source}
}

// CurrentRates returns the latest snapshot.
func (s *RateService) CurrentRates(ctx context.Context) (*domain.RateTable, error) {
	table := s.current.Load()
	if table == nil {
		return nil, fmt.Errorf("%w: no rates fetched yet", apperrors.ErrRatesUnavailable)
	}
	return table, nil
}

// RefreshRates fetches a table for baseCurrency and makes it current.
// Concurrent refreshes for the same base share one upstream call. On failure
// the previous snapshot stays in place.
func (s *RateService) RefreshRates(ctx context.Context, baseCurrency string) (*domain.RateTable, error) {
	base := domain.NormalizeCurrencyCode(baseCurrency)
	if base == "" {
		return nil, fmt.Errorf("%w: base currency is required", apperrors.ErrValidation)
	}

	v, err, shared := s.group.Do(base, func() (any, error) {
		return s.source.FetchRates(ctx, base)
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrRatesUnavailable) {
			err = fmt.Errorf("%w: %v", apperrors.ErrRatesUnavailable, err)
		}
		return nil, err
	}

	table, _ := v.(*domain.RateTable)
	if table == nil || table.Len() == 0 {
		return nil, fmt.Errorf("%w: upstream returned no rates for %s", apperrors.ErrRatesUnavailable, base)
	}

	s.current.Store(table)
	s.LogDebug(ctx, "Rate snapshot swapped",
		slog.String("base", table.Base()),
		slog.Int("currencies", table.Len()),
		slog.Bool("shared", shared))
	return table, nil
}

