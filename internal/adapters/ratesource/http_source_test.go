package ratesource_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/currency_exchanger/internal/adapters/ratesource"
	"github.com/SscSPs/currency_exchanger/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPRateSource_FetchRates(t *testing.T) {
	var gotBase string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBase = r.URL.Query().Get("base")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"base":"EUR","date":"2024-05-01","rates":{"EUR":1,"USD":1.129031,"JPY":129.53}}`))
	}))
	defer srv.Close()

	table, err := ratesource.NewHTTPRateSource(srv.URL, time.Second).FetchRates(context.Background(), "eur")

	require.NoError(t, err)
	assert.Equal(t, "EUR", gotBase)
	assert.Equal(t, "EUR", table.Base())
	assert.Equal(t, 3, table.Len())
	usd, ok := table.Rate("USD")
	assert.True(t, ok)
	assert.Equal(t, 1.129031, usd)
}

func TestHTTPRateSource_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		payload string
	}{
		{"server error", http.StatusInternalServerError, `oops`},
		{"not json", http.StatusOK, `<html></html>`},
		{"empty rates", http.StatusOK, `{"base":"EUR","rates":{}}`},
		{"zero rate", http.StatusOK, `{"base":"EUR","rates":{"EUR":1,"USD":0}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.payload))
			}))
			defer srv.Close()

			_, err := ratesource.NewHTTPRateSource(srv.URL, time.Second).FetchRates(context.Background(), "EUR")
			assert.ErrorIs(t, err, apperrors.ErrRatesUnavailable)
		})
	}
}

func TestHTTPRateSource_HonorsCancellation(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := ratesource.NewHTTPRateSource(srv.URL, 5*time.Second).FetchRates(ctx, "EUR")

	assert.ErrorIs(t, err, apperrors.ErrRatesUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
