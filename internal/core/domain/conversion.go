package domain

import (
	"fmt"
	"math"
	"strings"

	"github.com/SscSPs/currency_exchanger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// MinorUnitPlaces is the rounding granularity applied to converted amounts.
const MinorUnitPlaces = 2

// Conversion is the pure result of applying a rate table to an amount.
type Conversion struct {
	Amount          float64 `json:"amount"`
	FromCurrency    string  `json:"fromCurrency"`
	ToCurrency      string  `json:"toCurrency"`
	Rate            float64 `json:"rate"` // rate(to) / rate(from)
	ConvertedAmount float64 `json:"convertedAmount"`
}

// RoundMinor rounds x half-up to MinorUnitPlaces decimal places.
// Rounding happens on the shortest decimal representation of x, so 1.005 becomes 1.01.
func RoundMinor(x float64) float64 {
	return decimal.NewFromFloat(x).Round(MinorUnitPlaces).InexactFloat64()
}

// ParseAmount parses already-normalized user input into a positive amount.
func ParseAmount(text string) (float64, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: amount is empty", apperrors.ErrInvalidAmount)
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", apperrors.ErrInvalidAmount, text)
	}
	if !d.IsPositive() {
		return 0, fmt.Errorf("%w: %q must be positive", apperrors.ErrInvalidAmount, text)
	}
	amount := d.InexactFloat64()
	if err := ValidateAmount(amount); err != nil {
		return 0, err
	}
	return amount, nil
}

// ValidateAmount rejects zero, negative and non-finite amounts.
func ValidateAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return fmt.Errorf("%w: %v must be a positive number", apperrors.ErrInvalidAmount, amount)
	}
	return nil
}

// Convert applies table to amount. It has no side effects.
// A missing or non-positive rate on either side is ErrInvalidExchangeRate.
func Convert(table *RateTable, amount float64, from, to string) (Conversion, error) {
	if err := ValidateAmount(amount); err != nil {
		return Conversion{}, err
	}
	from = NormalizeCurrencyCode(from)
	to = NormalizeCurrencyCode(to)

	fromRate, ok := table.Rate(from)
	if !ok || fromRate <= 0 {
		return Conversion{}, fmt.Errorf("%w: no rate for %s", apperrors.ErrInvalidExchangeRate, from)
	}
	toRate, ok := table.Rate(to)
	if !ok || toRate <= 0 {
		return Conversion{}, fmt.Errorf("%w: no rate for %s", apperrors.ErrInvalidExchangeRate, to)
	}

	rate := toRate / fromRate
	converted := amount * rate
	if math.IsNaN(converted) || math.IsInf(converted, 0) {
		return Conversion{}, fmt.Errorf("%w: %s→%s produced %v", apperrors.ErrInvalidExchangeRate, from, to, converted)
	}

	return Conversion{
		Amount:          amount,
		FromCurrency:    from,
		ToCurrency:      to,
		Rate:            rate,
		ConvertedAmount: RoundMinor(converted),
	}, nil
}
