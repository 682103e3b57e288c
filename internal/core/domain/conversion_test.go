package domain_test

import (
	"math"
	"testing"
	"time"

	"github.com/SscSPs/currency_exchanger/internal/apperrors"
	"github.com/SscSPs/currency_exchanger/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTable(t *testing.T, rates map[string]float64) *domain.RateTable {
	t.Helper()
	table, err := domain.NewRateTable("USD", rates, time.Now())
	require.NoError(t, err)
	return table
}

func TestConvert_UsesRateRatio(t *testing.T) {
	table := mustTable(t, map[string]float64{"USD": 1.0, "EUR": 0.9})

	got, err := domain.Convert(table, 100, "USD", "EUR")

	require.NoError(t, err)
	assert.InDelta(t, 90.00, got.ConvertedAmount, 1e-9)
	assert.InDelta(t, 0.9, got.Rate, 1e-12)
	assert.Equal(t, "USD", got.FromCurrency)
	assert.Equal(t, "EUR", got.ToCurrency)
}

func TestConvert_MatchesRoundedFormula(t *testing.T) {
	tests := []struct {
		fromRate, toRate, amount float64
	}{
		{1.0, 0.9, 100},
		{1.1, 0.85, 37.5},
		{4.5, 129.53, 12.34},
		{0.0123, 1.77, 1000},
		{3.6725, 1.0, 0.01},
		{1.0, 1.0, 1.005},
	}
	for _, tt := range tests {
		table := mustTable(t, map[string]float64{"AAA": tt.fromRate, "BBB": tt.toRate})
		got, err := domain.Convert(table, tt.amount, "AAA", "BBB")
		require.NoError(t, err)
		want := domain.RoundMinor(tt.amount * tt.toRate / tt.fromRate)
		assert.Equal(t, want, got.ConvertedAmount, "amount=%v from=%v to=%v", tt.amount, tt.fromRate, tt.toRate)
	}
}

func TestConvert_MissingRates(t *testing.T) {
	table := mustTable(t, map[string]float64{"USD": 1.0})

	_, err := domain.Convert(table, 100, "USD", "EUR")
	assert.ErrorIs(t, err, apperrors.ErrInvalidExchangeRate)

	_, err = domain.Convert(table, 100, "GBP", "USD")
	assert.ErrorIs(t, err, apperrors.ErrInvalidExchangeRate)

	_, err = domain.Convert(nil, 100, "USD", "USD")
	assert.ErrorIs(t, err, apperrors.ErrInvalidExchangeRate)
}

func TestConvert_RejectsBadAmountsBeforeLookup(t *testing.T) {
	for _, amount := range []float64{0, -5, math.NaN(), math.Inf(1)} {
		_, err := domain.Convert(nil, amount, "USD", "EUR")
		assert.ErrorIs(t, err, apperrors.ErrInvalidAmount, "amount=%v", amount)
	}
}

func TestConvert_RoundTripWithinOneMinorUnit(t *testing.T) {
	rates := []float64{0.9, 1.2345, 0.0071, 88.13, 3.6725}
	amounts := []float64{1, 19.99, 100, 12345.67}
	for _, r := range rates {
		forward := mustTable(t, map[string]float64{"A": 1, "B": r})
		for _, x := range amounts {
			there, err := domain.Convert(forward, x, "A", "B")
			require.NoError(t, err)
			if there.ConvertedAmount <= 0 {
				continue
			}
			back, err := domain.Convert(forward, there.ConvertedAmount, "B", "A")
			require.NoError(t, err)
			// Converting to a currency with few minor units per source unit loses
			// precision proportional to the rate; only assert when it is representable.
			if r >= 1 {
				assert.InDelta(t, x, back.ConvertedAmount, 0.01+1e-9, "x=%v rate=%v", x, r)
			}
		}
	}
}

func TestRoundMinor_HalfUp(t *testing.T) {
	assert.Equal(t, 1.01, domain.RoundMinor(1.005))
	assert.Equal(t, 2.35, domain.RoundMinor(2.345))
	assert.Equal(t, 2.34, domain.RoundMinor(2.3449))
	assert.Equal(t, 90.0, domain.RoundMinor(90.00000000000001))
}

func TestParseAmount(t *testing.T) {
	got, err := domain.ParseAmount(" 150.25 ")
	require.NoError(t, err)
	assert.Equal(t, 150.25, got)

	for _, bad := range []string{"", "abc", "0", "-1", "1,5", "NaN"} {
		_, err := domain.ParseAmount(bad)
		assert.ErrorIs(t, err, apperrors.ErrInvalidAmount, "input=%q", bad)
	}
}

func TestNewRateTable(t *testing.T) {
	src := map[string]float64{"usd": 1.0, "EUR": 0.9}
	table, err := domain.NewRateTable("usd", src, time.Now())
	require.NoError(t, err)

	src["EUR"] = 5 // must not leak into the snapshot
	r, ok := table.Rate("eur")
	assert.True(t, ok)
	assert.Equal(t, 0.9, r)
	assert.Equal(t, "USD", table.Base())
	assert.Equal(t, []string{"EUR", "USD"}, table.Codes())

	_, err = domain.NewRateTable("USD", map[string]float64{}, time.Now())
	assert.Error(t, err)
	_, err = domain.NewRateTable("USD", map[string]float64{"EUR": 0}, time.Now())
	assert.Error(t, err)
}
