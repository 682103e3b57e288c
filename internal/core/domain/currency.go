package domain

import "strings"

// Currency describes a currency code offered by the rate table.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // e.g. "USD"
	Name         string `json:"name,omitempty"`
	Symbol       string `json:"symbol,omitempty"`
}

// NormalizeCurrencyCode trims and upper-cases a code. Codes are opaque keys;
// they are not checked against an ISO list.
func NormalizeCurrencyCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
