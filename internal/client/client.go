// Package client is a typed HTTP client for the exchanger API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SscSPs/currency_exchanger/internal/dto"
)

// DefaultTimeout bounds each request when the caller's context has no deadline.
const DefaultTimeout = 10 * time.Second

// APIError is a non-2xx response. Message is the server's user-facing text when present.
type APIError struct {
	StatusCode int
	Message    string
	Detail     string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Detail != "" {
		return e.Detail
	}
	return http.StatusText(e.StatusCode)
}

// Client talks to one exchanger server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for serverURL, e.g. http://localhost:8080.
func New(serverURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(serverURL, "/") + "/api/v1",
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

func (c *Client) Rates(ctx context.Context) (*dto.RateTableResponse, error) {
	var out dto.RateTableResponse
	if err := c.do(ctx, http.MethodGet, "/rates", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Quote(ctx context.Context, amount, from, to string) (*dto.QuoteResponse, error) {
	var out dto.QuoteResponse
	req := dto.ConversionRequest{Amount: amount, FromCurrency: from, ToCurrency: to}
	if err := c.do(ctx, http.MethodPost, "/conversions/quote", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Exchange(ctx context.Context, amount, from, to string) (*dto.TransactionResponse, error) {
	var out dto.TransactionResponse
	req := dto.ConversionRequest{Amount: amount, FromCurrency: from, ToCurrency: to}
	if err := c.do(ctx, http.MethodPost, "/exchanges", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Balances(ctx context.Context) ([]dto.BalanceResponse, error) {
	var out []dto.BalanceResponse
	if err := c.do(ctx, http.MethodGet, "/balances", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Affordability(ctx context.Context, code string, amount float64) (*dto.AffordabilityResponse, error) {
	var out dto.AffordabilityResponse
	path := fmt.Sprintf("/balances/%s/affordability?amount=%s",
		url.PathEscape(code), url.QueryEscape(fmt.Sprint(amount)))
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Transactions(ctx context.Context) ([]dto.TransactionResponse, error) {
	var out []dto.TransactionResponse
	if err := c.do(ctx, http.MethodGet, "/transactions", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errBody dto.ErrorResponse
		if json.NewDecoder(resp.Body).Decode(&errBody) == nil {
			apiErr.Message = errBody.Message
			apiErr.Detail = errBody.Error
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
