package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/currency_exchanger/internal/apperrors"
	"github.com/SscSPs/currency_exchanger/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_exchanger/internal/core/ports/repositories"
	"github.com/SscSPs/currency_exchanger/internal/middleware"
)

// BootstrapLedger seeds an empty ledger with a single balance. It reports
// whether a seed was written; a ledger that already holds balances is left alone.
func BootstrapLedger(ctx context.Context, ledger portsrepo.LedgerRepositoryWithTx, currencyCode string, amount float64) (bool, error) {
	code := domain.NormalizeCurrencyCode(currencyCode)
	if code == "" {
		return false, fmt.Errorf("%w: seed currency is required", apperrors.ErrValidation)
	}
	if err := domain.ValidateAmount(amount); err != nil {
		return false, err
	}

	seeded := false
	err := ledger.WithinTx(ctx, func(ctx context.Context, tx portsrepo.LedgerTx) error {
		existing, err := tx.ListBalances(ctx)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			return nil
		}
		now := time.Now().UTC()
		seeded = true
		return tx.UpsertBalance(ctx, domain.Balance{
			CurrencyCode: code,
			Amount:       amount,
			AuditFields:  domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
		})
	})
	if err != nil {
		return false, apperrors.NewStoreError("bootstrap ledger", err)
	}

	if seeded {
		middleware.GetLoggerFromCtx(ctx).Info("Seeded empty ledger",
			slog.String("currency", code),
			slog.Float64("amount", amount))
	}
	return seeded, nil
}
