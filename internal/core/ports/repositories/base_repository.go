package repositories

import (
	"context"
)

// LedgerTx is the view of the ledger available inside a unit of work.
// Writes made through it become visible to other readers only on commit.
type LedgerTx interface {
	BalanceRepositoryFacade
	TransactionRepositoryFacade
}

// UnitOfWork runs fn atomically. If fn returns an error, or ctx is cancelled
// before commit, none of fn's writes are observable.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx LedgerTx) error) error
}

// LedgerRepositoryWithTx is a ledger store that also supports units of work.
type LedgerRepositoryWithTx interface {
	LedgerTx
	UnitOfWork
}
