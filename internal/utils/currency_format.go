package utils

import (
	"github.com/shopspring/decimal"
)

// FormatWithPrecision formats an amount with the given number of decimal places, rounding half-up.
// Example: 12.345 with precision 2 returns "12.35"
func FormatWithPrecision(amount float64, precision int) string {
	return decimal.NewFromFloat(amount).StringFixed(int32(precision))
}

// FormatMoney renders amount followed by its currency code, e.g. "90.00 USD".
func FormatMoney(amount float64, currencyCode string) string {
	return FormatWithPrecision(amount, 2) + " " + currencyCode
}
