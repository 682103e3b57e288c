// Package ratesource provides upstream exchange rate tables.
package ratesource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/SscSPs/currency_exchanger/internal/apperrors"
	"github.com/SscSPs/currency_exchanger/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_exchanger/internal/core/ports/repositories"
)

// DefaultFetchTimeout bounds a single upstream request.
const DefaultFetchTimeout = 5 * time.Second

// ratesResponse is the upstream payload.
type ratesResponse struct {
	Base  string             `json:"base"`
	Date  string             `json:"date"`
	Rates map[string]float64 `json:"rates"`
}

// HTTPRateSource fetches rate tables from a JSON endpoint.
type HTTPRateSource struct {
	baseURL    string
	httpClient *http.Client
	now        func() time.Time
}

var _ portsrepo.RateSource = (*HTTPRateSource)(nil)

// NewHTTPRateSource creates a source for baseURL. A non-positive timeout uses DefaultFetchTimeout.
func NewHTTPRateSource(baseURL string, timeout time.Duration) *HTTPRateSource {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &HTTPRateSource{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// FetchRates requests {baseURL}?base={baseCurrency}. Any failure wraps apperrors.ErrRatesUnavailable.
func (s *HTTPRateSource) FetchRates(ctx context.Context, baseCurrency string) (*domain.RateTable, error) {
	u, err := url.Parse(s.baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: bad rates url: %v", apperrors.ErrRatesUnavailable, err)
	}
	q := u.Query()
	q.Set("base", domain.NormalizeCurrencyCode(baseCurrency))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", apperrors.ErrRatesUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to make request: %w", apperrors.ErrRatesUnavailable, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: upstream returned status %d: %s", apperrors.ErrRatesUnavailable, resp.StatusCode, string(body))
	}

	var payload ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", apperrors.ErrRatesUnavailable, err)
	}

	base := payload.Base
	if base == "" {
		base = baseCurrency
	}
	table, err := domain.NewRateTable(base, payload.Rates, s.now())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrRatesUnavailable, err)
	}
	return table, nil
}
