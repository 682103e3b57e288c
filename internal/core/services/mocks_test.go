package services_test

import (
	"context"

	"github.com/SscSPs/currency_exchanger/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_exchanger/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock LedgerRepositoryWithTx ---
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) FindBalance(ctx context.Context, code string) (*domain.Balance, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Balance), args.Error(1)
}

func (m *MockLedgerRepository) ListBalances(ctx context.Context) ([]domain.Balance, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Balance), args.Error(1)
}

func (m *MockLedgerRepository) UpsertBalance(ctx context.Context, balance domain.Balance) error {
	args := m.Called(ctx, balance)
	return args.Error(0)
}

func (m *MockLedgerRepository) Debit(ctx context.Context, code string, amount float64) (*domain.Balance, error) {
	args := m.Called(ctx, code, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Balance), args.Error(1)
}

func (m *MockLedgerRepository) Credit(ctx context.Context, code string, amount float64) (*domain.Balance, error) {
	args := m.Called(ctx, code, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Balance), args.Error(1)
}

func (m *MockLedgerRepository) CountTransactions(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockLedgerRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockLedgerRepository) AppendTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

// WithinTx hands the mock itself to fn, so expectations set on the mock apply inside the unit of work.
func (m *MockLedgerRepository) WithinTx(ctx context.Context, fn func(ctx context.Context, tx portsrepo.LedgerTx) error) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx, m)
}

// --- Mock ExchangeRateReaderSvc ---
type MockRateReader struct {
	mock.Mock
}

func (m *MockRateReader) CurrentRates(ctx context.Context) (*domain.RateTable, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateTable), args.Error(1)
}

// --- Mock RateSource ---
type MockRateSource struct {
	mock.Mock
}

func (m *MockRateSource) FetchRates(ctx context.Context, base string) (*domain.RateTable, error) {
	args := m.Called(ctx, base)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateTable), args.Error(1)
}

// staticRates serves a fixed table without mock bookkeeping.
type staticRates struct {
	table *domain.RateTable
	err   error
}

func (s staticRates) CurrentRates(context.Context) (*domain.RateTable, error) {
	return s.table, s.err
}

// failingLedger wraps a real store and makes one effect fail inside units of work.
type failingLedger struct {
	portsrepo.LedgerRepositoryWithTx
	failOn string
	err    error
}

func (f *failingLedger) WithinTx(ctx context.Context, fn func(ctx context.Context, tx portsrepo.LedgerTx) error) error {
	return f.LedgerRepositoryWithTx.WithinTx(ctx, func(ctx context.Context, tx portsrepo.LedgerTx) error {
		return fn(ctx, &failingTx{LedgerTx: tx, failOn: f.failOn, err: f.err})
	})
}

type failingTx struct {
	portsrepo.LedgerTx
	failOn string
	err    error
}

func (f *failingTx) Debit(ctx context.Context, code string, amount float64) (*domain.Balance, error) {
	if f.failOn == "debit" {
		return nil, f.err
	}
	return f.LedgerTx.Debit(ctx, code, amount)
}

func (f *failingTx) Credit(ctx context.Context, code string, amount float64) (*domain.Balance, error) {
	if f.failOn == "credit" {
		return nil, f.err
	}
	return f.LedgerTx.Credit(ctx, code, amount)
}

func (f *failingTx) AppendTransaction(ctx context.Context, txn domain.Transaction) error {
	if f.failOn == "append" {
		return f.err
	}
	return f.LedgerTx.AppendTransaction(ctx, txn)
}
