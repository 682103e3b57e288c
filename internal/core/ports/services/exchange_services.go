package services

import (
	"context"

	"github.com/SscSPs/currency_exchanger/internal/core/domain"
)

// ExchangeRateReaderSvc defines read access to the current rate snapshot
type ExchangeRateReaderSvc interface {
	// CurrentRates returns the latest snapshot, or apperrors.ErrRatesUnavailable if none was fetched yet.
	CurrentRates(ctx context.Context) (*domain.RateTable, error)
}

// ExchangeRateRefresherSvc replaces the snapshot from upstream
type ExchangeRateRefresherSvc interface {
	RefreshRates(ctx context.Context, baseCurrency string) (*domain.RateTable, error)
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateRefresherSvc
}

// ConversionSvc holds the side-effect free operations of the engine
type ConversionSvc interface {
	// Convert applies the current rate snapshot to amount.
	Convert(ctx context.Context, amount float64, fromCurrency, toCurrency string) (*domain.Conversion, error)
	// Quote parses amountText, converts it and computes the commission a settle would record now.
	Quote(ctx context.Context, amountText, fromCurrency, toCurrency string) (*domain.Quote, error)
	// CheckAffordability reports whether fromCurrency's balance covers amount.
	CheckAffordability(ctx context.Context, fromCurrency string, amount float64) (bool, error)
}

// SettlementSvc holds the operations that move value between balances
type SettlementSvc interface {
	// Settle debits, credits and records a transaction as one atomic unit.
	Settle(ctx context.Context, settlement domain.Settlement) (*domain.Transaction, error)
	// Exchange runs the whole submit flow: parse, convert, check affordability, settle.
	Exchange(ctx context.Context, amountText, fromCurrency, toCurrency string) (*domain.Transaction, error)
}

// LedgerReaderSvc exposes read accessors for presentation
type LedgerReaderSvc interface {
	AllBalances(ctx context.Context) ([]domain.Balance, error)
	GetBalance(ctx context.Context, currencyCode string) (*domain.Balance, error)
	TransactionCount(ctx context.Context) (int, error)
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// ExchangeSvcFacade combines all conversion engine interfaces
type ExchangeSvcFacade interface {
	ConversionSvc
	SettlementSvc
	LedgerReaderSvc
}
