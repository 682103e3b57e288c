package domain

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// RateTable is an immutable snapshot of rates relative to one base currency.
// Rates are only meaningful together: converting A→B uses rate(B)/rate(A).
type RateTable struct {
	base      string
	rates     map[string]float64
	fetchedAt time.Time
}

// NewRateTable builds a snapshot, copying rates so later changes to the input
// map cannot leak into it. Every rate must be positive and finite.
func NewRateTable(base string, rates map[string]float64, fetchedAt time.Time) (*RateTable, error) {
	if len(rates) == 0 {
		return nil, fmt.Errorf("rate table for %s is empty", base)
	}
	copied := make(map[string]float64, len(rates))
	for code, rate := range rates {
		if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
			return nil, fmt.Errorf("rate for %s is not a positive number: %v", code, rate)
		}
		copied[NormalizeCurrencyCode(code)] = rate
	}
	return &RateTable{
		base:      NormalizeCurrencyCode(base),
		rates:     copied,
		fetchedAt: fetchedAt,
	}, nil
}

// Base is the currency every rate is expressed against.
func (t *RateTable) Base() string { return t.base }

// FetchedAt is when the snapshot was obtained upstream.
func (t *RateTable) FetchedAt() time.Time { return t.fetchedAt }

// Rate returns the rate for code and whether it is present.
func (t *RateTable) Rate(code string) (float64, bool) {
	if t == nil {
		return 0, false
	}
	r, ok := t.rates[NormalizeCurrencyCode(code)]
	return r, ok
}

// Len is the number of currencies in the snapshot.
func (t *RateTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rates)
}

// Codes lists the currency codes in lexical order.
func (t *RateTable) Codes() []string {
	if t == nil {
		return nil
	}
	codes := make([]string, 0, len(t.rates))
	for code := range t.rates {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Rates returns a copy of the underlying mapping.
func (t *RateTable) Rates() map[string]float64 {
	if t == nil {
		return nil
	}
	out := make(map[string]float64, len(t.rates))
	for k, v := range t.rates {
		out[k] = v
	}
	return out
}
