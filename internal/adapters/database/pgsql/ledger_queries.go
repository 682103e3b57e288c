package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/currency_exchanger/internal/apperrors"
	"github.com/SscSPs/currency_exchanger/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// ledgerQueries runs the ledger SQL against whichever querier it is given.
// Debit needs row locks, so its querier must be a transaction.
type ledgerQueries struct {
	q   querier
	now func() time.Time
}

const balanceColumns = `currency_code, amount, created_at, updated_at`

func scanBalance(row pgx.Row) (*domain.Balance, error) {
	var b domain.Balance
	if err := row.Scan(&b.CurrencyCode, &b.Amount, &b.CreatedAt, &b.LastUpdatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}

func (l ledgerQueries) findBalance(ctx context.Context, code string) (*domain.Balance, error) {
	code = domain.NormalizeCurrencyCode(code)
	query := `SELECT ` + balanceColumns + ` FROM balances WHERE currency_code = $1`
	b, err := scanBalance(l.q.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("balance %s", code))
		}
		return nil, fmt.Errorf("error finding balance %s: %w", code, err)
	}
	return b, nil
}

func (l ledgerQueries) listBalances(ctx context.Context) ([]domain.Balance, error) {
	query := `SELECT ` + balanceColumns + ` FROM balances ORDER BY seq`
	rows, err := l.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing balances: %w", err)
	}
	defer rows.Close()

	balances := []domain.Balance{}
	for rows.Next() {
		b, err := scanBalance(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning balance: %w", err)
		}
		balances = append(balances, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating balances: %w", err)
	}
	return balances, nil
}

func (l ledgerQueries) upsertBalance(ctx context.Context, b domain.Balance) error {
	code := domain.NormalizeCurrencyCode(b.CurrencyCode)
	if code == "" {
		return fmt.Errorf("%w: currency code is required", apperrors.ErrValidation)
	}
	now := l.now()
	createdAt := b.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}
	query := `
		INSERT INTO balances (currency_code, amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (currency_code) DO UPDATE SET
			amount = EXCLUDED.amount,
			updated_at = EXCLUDED.updated_at
	`
	if _, err := l.q.Exec(ctx, query, code, b.Amount, createdAt, now); err != nil {
		if pgErrorCode(err) == pgCheckViolation {
			return fmt.Errorf("%w: %s balance cannot be negative", apperrors.ErrInvalidAmount, code)
		}
		return fmt.Errorf("error upserting balance %s: %w", code, err)
	}
	return nil
}

func (l ledgerQueries) debit(ctx context.Context, code string, amount float64) (*domain.Balance, error) {
	if err := domain.ValidateAmount(amount); err != nil {
		return nil, err
	}
	code = domain.NormalizeCurrencyCode(code)

	var current float64
	err := l.q.QueryRow(ctx, `SELECT amount FROM balances WHERE currency_code = $1 FOR UPDATE`, code).Scan(&current)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("error locking balance %s: %w", code, err)
	}
	if current < amount {
		return nil, fmt.Errorf("%w: %s holds %v, needs %v", apperrors.ErrInsufficientBalance, code, current, amount)
	}

	query := `
		UPDATE balances SET amount = amount - $2, updated_at = $3
		WHERE currency_code = $1
		RETURNING ` + balanceColumns
	b, err := scanBalance(l.q.QueryRow(ctx, query, code, amount, l.now()))
	if err != nil {
		if pgErrorCode(err) == pgCheckViolation {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrInsufficientBalance, code)
		}
		return nil, fmt.Errorf("error debiting balance %s: %w", code, err)
	}
	return b, nil
}

func (l ledgerQueries) credit(ctx context.Context, code string, amount float64) (*domain.Balance, error) {
	if amount < 0 {
		return nil, fmt.Errorf("%w: credit of %v", apperrors.ErrInvalidAmount, amount)
	}
	code = domain.NormalizeCurrencyCode(code)
	now := l.now()
	query := `
		INSERT INTO balances (currency_code, amount, created_at, updated_at)
		VALUES ($1, $2, $3, $3)
		ON CONFLICT (currency_code) DO UPDATE SET
			amount = balances.amount + EXCLUDED.amount,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + balanceColumns
	b, err := scanBalance(l.q.QueryRow(ctx, query, code, amount, now))
	if err != nil {
		return nil, fmt.Errorf("error crediting balance %s: %w", code, err)
	}
	return b, nil
}

func (l ledgerQueries) countTransactions(ctx context.Context) (int, error) {
	var count int
	if err := l.q.QueryRow(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting transactions: %w", err)
	}
	return count, nil
}

func (l ledgerQueries) listTransactions(ctx context.Context) ([]domain.Transaction, error) {
	query := `
		SELECT transaction_id, from_currency, to_currency, amount, converted_amount, commission_fee, created_at
		FROM transactions
		ORDER BY seq
	`
	rows, err := l.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing transactions: %w", err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		var t domain.Transaction
		if err := rows.Scan(&t.TransactionID, &t.FromCurrency, &t.ToCurrency, &t.Amount, &t.ConvertedAmount, &t.CommissionFee, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning transaction: %w", err)
		}
		txns = append(txns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}
	return txns, nil
}

func (l ledgerQueries) appendTransaction(ctx context.Context, t domain.Transaction) error {
	createdAt := t.CreatedAt
	if createdAt.IsZero() {
		createdAt = l.now()
	}
	query := `
		INSERT INTO transactions (transaction_id, from_currency, to_currency, amount, converted_amount, commission_fee, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := l.q.Exec(ctx, query, t.TransactionID, t.FromCurrency, t.ToCurrency, t.Amount, t.ConvertedAmount, t.CommissionFee, createdAt)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return fmt.Errorf("transaction %s already recorded: %w", t.TransactionID, err)
		}
		return fmt.Errorf("error appending transaction %s: %w", t.TransactionID, err)
	}
	return nil
}
