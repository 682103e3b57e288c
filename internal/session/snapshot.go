package session

import (
	"fmt"
	"time"

	"github.com/SscSPs/currency_exchanger/internal/core/domain"
	"github.com/SscSPs/currency_exchanger/internal/utils"
)

// Snapshot is the whole screen state at one instant. It is never mutated
// after publication; every command produces a new one.
type Snapshot struct {
	Rates             *domain.RateTable
	Balances          []domain.Balance
	Amount            string
	FromCurrency      string
	ToCurrency        string
	CommissionFeeRate float64
	ConvertedAmount   float64
	CanConvert        bool
	Message           string
	UpdatedAt         time.Time
}

func initialSnapshot(defaultCurrency string, now time.Time) Snapshot {
	code := domain.NormalizeCurrencyCode(defaultCurrency)
	return Snapshot{
		FromCurrency: code,
		ToCurrency:   code,
		UpdatedAt:    now,
	}
}

// QuoteMessage renders "<amt> <FROM> = <conv> <TO> // <fee> <FROM> commission fee".
func QuoteMessage(amount float64, from string, converted float64, to string, fee float64) string {
	return fmt.Sprintf("%s %s = %s %s // %s %s commission fee",
		money(amount), from, money(converted), to, money(fee), from)
}

func money(x float64) string {
	return utils.FormatWithPrecision(x, domain.MinorUnitPlaces)
}
