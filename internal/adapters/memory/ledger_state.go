package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/currency_exchanger/internal/apperrors"
	"github.com/SscSPs/currency_exchanger/internal/core/domain"
)

// ledgerState is the unsynchronized data behind both the store and its
// staged transactions. Callers hold the store lock.
type ledgerState struct {
	balances map[string]domain.Balance
	order    []string
	txns     []domain.Transaction
	txnIDs   map[string]struct{}
	now      func() time.Time
}

func newLedgerState(now func() time.Time) ledgerState {
	return ledgerState{
		balances: make(map[string]domain.Balance),
		txnIDs:   make(map[string]struct{}),
		now:      now,
	}
}

func (s *ledgerState) clone() ledgerState {
	c := ledgerState{
		balances: make(map[string]domain.Balance, len(s.balances)),
		order:    append([]string(nil), s.order...),
		txns:     append([]domain.Transaction(nil), s.txns...),
		txnIDs:   make(map[string]struct{}, len(s.txnIDs)),
		now:      s.now,
	}
	for k, v := range s.balances {
		c.balances[k] = v
	}
	for k := range s.txnIDs {
		c.txnIDs[k] = struct{}{}
	}
	return c
}

func (s *ledgerState) findBalance(code string) (*domain.Balance, error) {
	b, ok := s.balances[domain.NormalizeCurrencyCode(code)]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("balance %s", code))
	}
	return &b, nil
}

func (s *ledgerState) listBalances() []domain.Balance {
	out := make([]domain.Balance, 0, len(s.order))
	for _, code := range s.order {
		out = append(out, s.balances[code])
	}
	return out
}

func (s *ledgerState) upsertBalance(b domain.Balance) error {
	code := domain.NormalizeCurrencyCode(b.CurrencyCode)
	if code == "" {
		return fmt.Errorf("%w: currency code is required", apperrors.ErrValidation)
	}
	if b.Amount < 0 {
		return fmt.Errorf("%w: %s balance cannot be negative", apperrors.ErrInvalidAmount, code)
	}
	now := s.now()
	existing, ok := s.balances[code]
	if !ok {
		s.order = append(s.order, code)
		if b.CreatedAt.IsZero() {
			b.CreatedAt = now
		}
	} else if b.CreatedAt.IsZero() {
		b.CreatedAt = existing.CreatedAt
	}
	b.CurrencyCode = code
	b.LastUpdatedAt = now
	s.balances[code] = b
	return nil
}

// adjust applies delta to a balance, creating it at zero first if needed.
func (s *ledgerState) adjust(code string, delta float64) (*domain.Balance, error) {
	code = domain.NormalizeCurrencyCode(code)
	current := s.balances[code]
	next := current.Amount + delta
	if next < 0 {
		return nil, fmt.Errorf("%w: %s holds %v, needs %v", apperrors.ErrInsufficientBalance, code, current.Amount, -delta)
	}
	current.CurrencyCode = code
	current.Amount = next
	if err := s.upsertBalance(current); err != nil {
		return nil, err
	}
	b := s.balances[code]
	return &b, nil
}

func (s *ledgerState) debit(code string, amount float64) (*domain.Balance, error) {
	if err := domain.ValidateAmount(amount); err != nil {
		return nil, err
	}
	return s.adjust(code, -amount)
}

func (s *ledgerState) credit(code string, amount float64) (*domain.Balance, error) {
	if amount < 0 {
		return nil, fmt.Errorf("%w: credit of %v", apperrors.ErrInvalidAmount, amount)
	}
	return s.adjust(code, amount)
}

func (s *ledgerState) appendTransaction(txn domain.Transaction) error {
	if txn.TransactionID == "" {
		return fmt.Errorf("%w: transaction id is required", apperrors.ErrValidation)
	}
	if _, dup := s.txnIDs[txn.TransactionID]; dup {
		return fmt.Errorf("transaction %s already recorded", txn.TransactionID)
	}
	s.txnIDs[txn.TransactionID] = struct{}{}
	s.txns = append(s.txns, txn)
	return nil
}

func (s *ledgerState) listTransactions() []domain.Transaction {
	return append([]domain.Transaction(nil), s.txns...)
}

// stagedTx is the view handed to a unit of work. It never touches the store lock.
type stagedTx struct {
	state *ledgerState
}

func (t *stagedTx) FindBalance(_ context.Context, code string) (*domain.Balance, error) {
	return t.state.findBalance(code)
}

func (t *stagedTx) ListBalances(_ context.Context) ([]domain.Balance, error) {
	return t.state.listBalances(), nil
}

func (t *stagedTx) UpsertBalance(_ context.Context, b domain.Balance) error {
	return t.state.upsertBalance(b)
}

func (t *stagedTx) Debit(_ context.Context, code string, amount float64) (*domain.Balance, error) {
	return t.state.debit(code, amount)
}

func (t *stagedTx) Credit(_ context.Context, code string, amount float64) (*domain.Balance, error) {
	return t.state.credit(code, amount)
}

func (t *stagedTx) CountTransactions(_ context.Context) (int, error) {
	return len(t.state.txns), nil
}

func (t *stagedTx) ListTransactions(_ context.Context) ([]domain.Transaction, error) {
	return t.state.listTransactions(), nil
}

func (t *stagedTx) AppendTransaction(_ context.Context, txn domain.Transaction) error {
	return t.state.appendTransaction(txn)
}
