package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/SscSPs/currency_exchanger/internal/apperrors"
	"github.com/SscSPs/currency_exchanger/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_exchanger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_exchanger/internal/core/ports/services"
	"github.com/google/uuid"
)

// exchangeService is the conversion engine: pure conversion on the current
// rate snapshot plus atomic settlement against the ledger.
type exchangeService struct {
	BaseService
	ledger portsrepo.LedgerRepositoryWithTx
	rates  portssvc.ExchangeRateReaderSvc
	now    func() time.Time
	newID  func() string
}

// ExchangeServiceOption configures an exchangeService.
type ExchangeServiceOption func(*exchangeService)

// WithClock overrides the time source used to stamp transactions.
func WithClock(now func() time.Time) ExchangeServiceOption {
	return func(s *exchangeService) {
		s.now = now
	}
}

// WithIDGenerator overrides how transaction ids are minted.
func WithIDGenerator(newID func() string) ExchangeServiceOption {
	return func(s *exchangeService) {
		s.newID = newID
	}
}

// NewExchangeService creates the conversion engine.
func NewExchangeService(
	ledger portsrepo.LedgerRepositoryWithTx,
	rates portssvc.ExchangeRateReaderSvc,
	opts ...ExchangeServiceOption,
) portssvc.ExchangeSvcFacade {
	s := &exchangeService{
		ledger: ledger,
		rates:  rates,
		now:    func() time.Time { return time.Now().UTC() },
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.ExchangeSvcFacade = (*exchangeService)(nil)

func (s *exchangeService) Convert(ctx context.Context, amount float64, fromCurrency, toCurrency string) (*domain.Conversion, error) {
	if err := domain.ValidateAmount(amount); err != nil {
		return nil, err
	}
	table, err := s.rates.CurrentRates(ctx)
	if err != nil {
		return nil, err
	}
	conversion, err := domain.Convert(table, amount, fromCurrency, toCurrency)
	if err != nil {
		return nil, err
	}
	return &conversion, nil
}

func (s *exchangeService) Quote(ctx context.Context, amountText, fromCurrency, toCurrency string) (*domain.Quote, error) {
	amount, err := domain.ParseAmount(amountText)
	if err != nil {
		return nil, err
	}
	conversion, err := s.Convert(ctx, amount, fromCurrency, toCurrency)
	if err != nil {
		return nil, err
	}
	count, err := s.ledger.CountTransactions(ctx)
	if err != nil {
		return nil, apperrors.NewStoreError("count transactions", err)
	}
	return &domain.Quote{
		Conversion:        *conversion,
		CommissionFeeRate: domain.CommissionFeeRate(count),
		CommissionFee:     domain.CommissionFee(count, conversion.Amount),
	}, nil
}

// CheckAffordability treats a currency that was never funded as a zero balance.
func (s *exchangeService) CheckAffordability(ctx context.Context, fromCurrency string, amount float64) (bool, error) {
	if err := domain.ValidateAmount(amount); err != nil {
		return false, err
	}
	balance, err := s.ledger.FindBalance(ctx, domain.NormalizeCurrencyCode(fromCurrency))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, nil
		}
		return false, apperrors.NewStoreError("find balance", err)
	}
	return balance.CanAfford(amount), nil
}

// Settle debits, credits and appends the transaction in one unit of work.
// The commission is derived from the log size observed inside that unit.
func (s *exchangeService) Settle(ctx context.Context, settlement domain.Settlement) (*domain.Transaction, error) {
	from := domain.NormalizeCurrencyCode(settlement.FromCurrency)
	to := domain.NormalizeCurrencyCode(settlement.ToCurrency)
	if from == "" || to == "" {
		return nil, fmt.Errorf("%w: both currencies are required", apperrors.ErrValidation)
	}
	if err := domain.ValidateAmount(settlement.SourceAmount); err != nil {
		return nil, err
	}
	converted := settlement.ConvertedAmount
	if math.IsNaN(converted) || math.IsInf(converted, 0) || converted < 0 {
		return nil, fmt.Errorf("%w: converted amount %v must not be negative", apperrors.ErrInvalidAmount, converted)
	}

	var recorded domain.Transaction
	err := s.ledger.WithinTx(ctx, func(ctx context.Context, tx portsrepo.LedgerTx) error {
		count, err := tx.CountTransactions(ctx)
		if err != nil {
			return err
		}
		if _, err := tx.Debit(ctx, from, settlement.SourceAmount); err != nil {
			return err
		}
		if _, err := tx.Credit(ctx, to, converted); err != nil {
			return err
		}
		recorded = domain.Transaction{
			TransactionID:   s.newID(),
			FromCurrency:    from,
			ToCurrency:      to,
			Amount:          settlement.SourceAmount,
			ConvertedAmount: converted,
			CommissionFee:   domain.CommissionFee(count, settlement.SourceAmount),
			CreatedAt:       s.now(),
		}
		return tx.AppendTransaction(ctx, recorded)
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && !apperrors.IsDomainError(err) {
			return nil, fmt.Errorf("%w: settle aborted: %w", apperrors.ErrStoreFailure, ctxErr)
		}
		if !apperrors.IsDomainError(err) {
			s.LogError(ctx, err, "Settlement failed",
				slog.String("from_currency", from),
				slog.String("to_currency", to))
		}
		return nil, apperrors.NewStoreError("settle", err)
	}

	s.LogInfo(ctx, "Settlement committed",
		slog.String("transaction_id", recorded.TransactionID),
		slog.String("from_currency", from),
		slog.String("to_currency", to),
		slog.Float64("amount", recorded.Amount),
		slog.Float64("converted_amount", recorded.ConvertedAmount),
		slog.Float64("commission_fee", recorded.CommissionFee))
	return &recorded, nil
}

// Exchange is the submit flow: parse, convert, check affordability, settle.
func (s *exchangeService) Exchange(ctx context.Context, amountText, fromCurrency, toCurrency string) (*domain.Transaction, error) {
	amount, err := domain.ParseAmount(amountText)
	if err != nil {
		return nil, err
	}
	conversion, err := s.Convert(ctx, amount, fromCurrency, toCurrency)
	if err != nil {
		return nil, err
	}
	ok, err := s.CheckAffordability(ctx, conversion.FromCurrency, conversion.Amount)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s balance cannot cover %v", apperrors.ErrInsufficientBalance, conversion.FromCurrency, conversion.Amount)
	}
	return s.Settle(ctx, domain.Settlement{
		FromCurrency:    conversion.FromCurrency,
		ToCurrency:      conversion.ToCurrency,
		SourceAmount:    conversion.Amount,
		ConvertedAmount: conversion.ConvertedAmount,
	})
}

func (s *exchangeService) AllBalances(ctx context.Context) ([]domain.Balance, error) {
	balances, err := s.ledger.ListBalances(ctx)
	if err != nil {
		return nil, apperrors.NewStoreError("list balances", err)
	}
	return balances, nil
}

func (s *exchangeService) GetBalance(ctx context.Context, currencyCode string) (*domain.Balance, error) {
	balance, err := s.ledger.FindBalance(ctx, domain.NormalizeCurrencyCode(currencyCode))
	if err != nil {
		return nil, apperrors.NewStoreError("find balance", err)
	}
	return balance, nil
}

func (s *exchangeService) TransactionCount(ctx context.Context) (int, error) {
	count, err := s.ledger.CountTransactions(ctx)
	if err != nil {
		return 0, apperrors.NewStoreError("count transactions", err)
	}
	return count, nil
}

func (s *exchangeService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	txns, err := s.ledger.ListTransactions(ctx)
	if err != nil {
		return nil, apperrors.NewStoreError("list transactions", err)
	}
	return txns, nil
}
