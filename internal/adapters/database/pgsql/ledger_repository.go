package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/currency_exchanger/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_exchanger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ledgerLockKey serializes units of work across every process sharing the database.
const ledgerLockKey int64 = 0x6c6564676572

// PgxLedgerRepository stores balances and the transaction log in Postgres.
type PgxLedgerRepository struct {
	BaseRepository
	now func() time.Time
}

var _ portsrepo.LedgerRepositoryWithTx = (*PgxLedgerRepository)(nil)

// NewLedgerRepository creates a ledger backed by pool.
func NewLedgerRepository(pool *pgxpool.Pool) *PgxLedgerRepository {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
		now:            func() time.Time { return time.Now().UTC() },
	}
}

func (r *PgxLedgerRepository) onPool() ledgerQueries {
	return ledgerQueries{q: r.Pool, now: r.now}
}

// WithinTx runs fn inside one database transaction holding the ledger advisory lock.
func (r *PgxLedgerRepository) WithinTx(ctx context.Context, fn func(ctx context.Context, tx portsrepo.LedgerTx) error) error {
	return r.withTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, ledgerLockKey); err != nil {
			return fmt.Errorf("error acquiring ledger lock: %w", err)
		}
		return fn(ctx, &pgxLedgerTx{queries: ledgerQueries{q: tx, now: r.now}})
	})
}

func (r *PgxLedgerRepository) FindBalance(ctx context.Context, code string) (*domain.Balance, error) {
	return r.onPool().findBalance(ctx, code)
}

func (r *PgxLedgerRepository) ListBalances(ctx context.Context) ([]domain.Balance, error) {
	return r.onPool().listBalances(ctx)
}

func (r *PgxLedgerRepository) UpsertBalance(ctx context.Context, b domain.Balance) error {
	return r.onPool().upsertBalance(ctx, b)
}

// Debit opens its own transaction so the row lock covers the check and the update.
func (r *PgxLedgerRepository) Debit(ctx context.Context, code string, amount float64) (*domain.Balance, error) {
	var out *domain.Balance
	err := r.withTx(ctx, func(tx pgx.Tx) error {
		var err error
		out, err = ledgerQueries{q: tx, now: r.now}.debit(ctx, code, amount)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PgxLedgerRepository) Credit(ctx context.Context, code string, amount float64) (*domain.Balance, error) {
	return r.onPool().credit(ctx, code, amount)
}

func (r *PgxLedgerRepository) CountTransactions(ctx context.Context) (int, error) {
	return r.onPool().countTransactions(ctx)
}

func (r *PgxLedgerRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	return r.onPool().listTransactions(ctx)
}

func (r *PgxLedgerRepository) AppendTransaction(ctx context.Context, t domain.Transaction) error {
	return r.onPool().appendTransaction(ctx, t)
}

// pgxLedgerTx is the LedgerTx handed to a unit of work.
type pgxLedgerTx struct {
	queries ledgerQueries
}

func (t *pgxLedgerTx) FindBalance(ctx context.Context, code string) (*domain.Balance, error) {
	return t.queries.findBalance(ctx, code)
}

func (t *pgxLedgerTx) ListBalances(ctx context.Context) ([]domain.Balance, error) {
	return t.queries.listBalances(ctx)
}

func (t *pgxLedgerTx) UpsertBalance(ctx context.Context, b domain.Balance) error {
	return t.queries.upsertBalance(ctx, b)
}

func (t *pgxLedgerTx) Debit(ctx context.Context, code string, amount float64) (*domain.Balance, error) {
	return t.queries.debit(ctx, code, amount)
}

func (t *pgxLedgerTx) Credit(ctx context.Context, code string, amount float64) (*domain.Balance, error) {
	return t.queries.credit(ctx, code, amount)
}

func (t *pgxLedgerTx) CountTransactions(ctx context.Context) (int, error) {
	return t.queries.countTransactions(ctx)
}

func (t *pgxLedgerTx) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	return t.queries.listTransactions(ctx)
}

func (t *pgxLedgerTx) AppendTransaction(ctx context.Context, txn domain.Transaction) error {
	return t.queries.appendTransaction(ctx, txn)
}
