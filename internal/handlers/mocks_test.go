package handlers_test

import (
	"context"

	"github.com/SscSPs/currency_exchanger/internal/core/domain"
	"github.com/SscSPs/currency_exchanger/internal/session"
	"github.com/stretchr/testify/mock"
)

type MockExchangeService struct {
	mock.Mock
}

func (m *MockExchangeService) Convert(ctx context.Context, amount float64, from, to string) (*domain.Conversion, error) {
	args := m.Called(ctx, amount, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Conversion), args.Error(1)
}

func (m *MockExchangeService) Quote(ctx context.Context, amountText, from, to string) (*domain.Quote, error) {
	args := m.Called(ctx, amountText, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}

func (m *MockExchangeService) CheckAffordability(ctx context.Context, from string, amount float64) (bool, error) {
	args := m.Called(ctx, from, amount)
	return args.Bool(0), args.Error(1)
}

func (m *MockExchangeService) Settle(ctx context.Context, settlement domain.Settlement) (*domain.Transaction, error) {
	args := m.Called(ctx, settlement)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockExchangeService) Exchange(ctx context.Context, amountText, from, to string) (*domain.Transaction, error) {
	args := m.Called(ctx, amountText, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockExchangeService) AllBalances(ctx context.Context) ([]domain.Balance, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Balance), args.Error(1)
}

func (m *MockExchangeService) GetBalance(ctx context.Context, code string) (*domain.Balance, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Balance), args.Error(1)
}

func (m *MockExchangeService) TransactionCount(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockExchangeService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

type MockRateService struct {
	mock.Mock
}

func (m *MockRateService) CurrentRates(ctx context.Context) (*domain.RateTable, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateTable), args.Error(1)
}

func (m *MockRateService) RefreshRates(ctx context.Context, base string) (*domain.RateTable, error) {
	args := m.Called(ctx, base)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateTable), args.Error(1)
}

type MockSession struct {
	mock.Mock
}

func (m *MockSession) Snapshot() session.Snapshot {
	return m.Called().Get(0).(session.Snapshot)
}

func (m *MockSession) Dispatch(ctx context.Context, cmd session.Command) (session.Snapshot, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(session.Snapshot), args.Error(1)
}
