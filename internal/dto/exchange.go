package dto

import (
	"github.com/SscSPs/currency_exchanger/internal/core/domain"
)

// ConversionRequest carries already-normalized user input for a quote or an exchange.
type ConversionRequest struct {
	Amount       string `json:"amount" binding:"required"`
	FromCurrency string `json:"fromCurrency" binding:"required,currency"`
	ToCurrency   string `json:"toCurrency" binding:"required,currency"`
}

// QuoteResponse is a conversion preview with the commission a settle would record now.
type QuoteResponse struct {
	Amount            float64 `json:"amount"`
	FromCurrency      string  `json:"fromCurrency"`
	ToCurrency        string  `json:"toCurrency"`
	Rate              float64 `json:"rate"`
	ConvertedAmount   float64 `json:"convertedAmount"`
	CommissionFeeRate float64 `json:"commissionFeeRate"`
	CommissionFee     float64 `json:"commissionFee"`
}

func ToQuoteResponse(q *domain.Quote) QuoteResponse {
	return QuoteResponse{
		Amount:            q.Amount,
		FromCurrency:      q.FromCurrency,
		ToCurrency:        q.ToCurrency,
		Rate:              q.Rate,
		ConvertedAmount:   q.ConvertedAmount,
		CommissionFeeRate: q.CommissionFeeRate,
		CommissionFee:     q.CommissionFee,
	}
}

// SettlementRequest applies a conversion the caller already priced.
type SettlementRequest struct {
	FromCurrency    string  `json:"fromCurrency" binding:"required,currency"`
	ToCurrency      string  `json:"toCurrency" binding:"required,currency"`
	SourceAmount    float64 `json:"sourceAmount" binding:"required,gt=0"`
	ConvertedAmount float64 `json:"convertedAmount" binding:"gte=0"`
}

func (r SettlementRequest) ToDomain() domain.Settlement {
	return domain.Settlement{
		FromCurrency:    r.FromCurrency,
		ToCurrency:      r.ToCurrency,
		SourceAmount:    r.SourceAmount,
		ConvertedAmount: r.ConvertedAmount,
	}
}

// AffordabilityResponse answers whether a balance covers an amount.
type AffordabilityResponse struct {
	CurrencyCode string  `json:"currencyCode"`
	Amount       float64 `json:"amount"`
	Affordable   bool    `json:"affordable"`
}
