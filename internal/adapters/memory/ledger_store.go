// Package memory holds an in-process ledger store used when no database is configured.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/currency_exchanger/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_exchanger/internal/core/ports/repositories"
)

// LedgerStore keeps balances and the transaction log in memory.
// A single RW mutex guards everything, so operations on the same currency
// code are linearizable.
type LedgerStore struct {
	mu    sync.RWMutex
	state ledgerState
}

var _ portsrepo.LedgerRepositoryWithTx = (*LedgerStore)(nil)

// NewLedgerStore returns an empty store.
func NewLedgerStore() *LedgerStore {
	return NewLedgerStoreWithClock(func() time.Time { return time.Now().UTC() })
}

// NewLedgerStoreWithClock returns an empty store that stamps balances with now.
func NewLedgerStoreWithClock(now func() time.Time) *LedgerStore {
	return &LedgerStore{state: newLedgerState(now)}
}

// WithinTx runs fn against a staged copy of the ledger and publishes it only
// if fn succeeds and ctx is still live. fn must use tx, not the store itself.
func (s *LedgerStore) WithinTx(ctx context.Context, fn func(ctx context.Context, tx portsrepo.LedgerTx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	staged := s.state.clone()
	if err := fn(ctx, &stagedTx{state: &staged}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.state = staged
	return nil
}

func (s *LedgerStore) FindBalance(_ context.Context, code string) (*domain.Balance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.findBalance(code)
}

func (s *LedgerStore) ListBalances(_ context.Context) ([]domain.Balance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.listBalances(), nil
}

func (s *LedgerStore) UpsertBalance(_ context.Context, b domain.Balance) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.upsertBalance(b)
}

func (s *LedgerStore) Debit(_ context.Context, code string, amount float64) (*domain.Balance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.debit(code, amount)
}

func (s *LedgerStore) Credit(_ context.Context, code string, amount float64) (*domain.Balance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.credit(code, amount)
}

func (s *LedgerStore) CountTransactions(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.state.txns), nil
}

func (s *LedgerStore) ListTransactions(_ context.Context) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.listTransactions(), nil
}

func (s *LedgerStore) AppendTransaction(_ context.Context, txn domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.appendTransaction(txn)
}
