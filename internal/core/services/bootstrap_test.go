package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/currency_exchanger/internal/adapters/memory"
	"github.com/SscSPs/currency_exchanger/internal/apperrors"
	"github.com/SscSPs/currency_exchanger/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBootstrapLedger_SeedsEmptyLedgerOnce(t *testing.T) {
	ctx := context.Background()
	store := memory.NewLedgerStore()

	seeded, err := services.BootstrapLedger(ctx, store, "eur", 100)
	require.NoError(t, err)
	assert.True(t, seeded)

	seeded, err = services.BootstrapLedger(ctx, store, "USD", 50)
	require.NoError(t, err)
	assert.False(t, seeded)

	all, err := store.ListBalances(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "EUR", all[0].CurrencyCode)
	assert.Equal(t, 100.0, all[0].Amount)
}

func TestBootstrapLedger_RejectsBadSeed(t *testing.T) {
	store := memory.NewLedgerStore()

	_, err := services.BootstrapLedger(context.Background(), store, "", 100)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = services.BootstrapLedger(context.Background(), store, "EUR", 0)
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
}

func TestBootstrapLedger_StoreFailure(t *testing.T) {
	ledger := new(MockLedgerRepository)
	ledger.On("WithinTx", mock.Anything).Return(nil).Once()
	ledger.On("ListBalances", mock.Anything).Return(nil, errors.New("no connection")).Once()

	_, err := services.BootstrapLedger(context.Background(), ledger, "EUR", 100)

	assert.ErrorIs(t, err, apperrors.ErrStoreFailure)
	ledger.AssertNotCalled(t, "UpsertBalance", mock.Anything, mock.Anything)
	ledger.AssertExpectations(t)
}
