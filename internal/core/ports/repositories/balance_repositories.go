package repositories

import (
	"context"

	"github.com/SscSPs/currency_exchanger/internal/core/domain"
)

// BalanceReader defines read operations for balances
type BalanceReader interface {
	// FindBalance returns the balance for a currency, or apperrors.ErrNotFound if it was never created.
	FindBalance(ctx context.Context, currencyCode string) (*domain.Balance, error)
	// ListBalances returns every balance in insertion order.
	ListBalances(ctx context.Context) ([]domain.Balance, error)
}

// BalanceWriter defines write operations for balances
type BalanceWriter interface {
	// UpsertBalance replaces the stored balance for balance.CurrencyCode wholesale.
	UpsertBalance(ctx context.Context, balance domain.Balance) error
	// Debit subtracts amount, starting from zero if the balance does not exist.
	// It fails with apperrors.ErrInsufficientBalance rather than go below zero.
	Debit(ctx context.Context, currencyCode string, amount float64) (*domain.Balance, error)
	// Credit adds amount, starting from zero if the balance does not exist.
	Credit(ctx context.Context, currencyCode string, amount float64) (*domain.Balance, error)
}

// BalanceRepositoryFacade combines all balance-related repository interfaces
type BalanceRepositoryFacade interface {
	BalanceReader
	BalanceWriter
}
