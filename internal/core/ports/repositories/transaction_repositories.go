package repositories

import (
	"context"

	"github.com/SscSPs/currency_exchanger/internal/core/domain"
)

// TransactionReader defines read operations for the transaction log
type TransactionReader interface {
	CountTransactions(ctx context.Context) (int, error)
	// ListTransactions returns the log in insertion order.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// TransactionWriter defines the append-only write side of the log
type TransactionWriter interface {
	AppendTransaction(ctx context.Context, txn domain.Transaction) error
}

// TransactionRepositoryFacade combines all transaction log interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
