package dto

import (
	"time"

	"github.com/SscSPs/currency_exchanger/internal/core/domain"
)

type BalanceResponse struct {
	CurrencyCode  string    `json:"currencyCode"`
	Amount        float64   `json:"amount"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

func ToBalanceResponse(b domain.Balance) BalanceResponse {
	return BalanceResponse{
		CurrencyCode:  b.CurrencyCode,
		Amount:        b.Amount,
		CreatedAt:     b.CreatedAt,
		LastUpdatedAt: b.LastUpdatedAt,
	}
}

// ToListBalanceResponse keeps the ledger's insertion order.
func ToListBalanceResponse(balances []domain.Balance) []BalanceResponse {
	out := make([]BalanceResponse, len(balances))
	for i, b := range balances {
		out[i] = ToBalanceResponse(b)
	}
	return out
}

type TransactionResponse struct {
	TransactionID   string    `json:"transactionID"`
	FromCurrency    string    `json:"fromCurrency"`
	ToCurrency      string    `json:"toCurrency"`
	Amount          float64   `json:"amount"`
	ConvertedAmount float64   `json:"convertedAmount"`
	CommissionFee   float64   `json:"commissionFee"`
	CreatedAt       time.Time `json:"createdAt"`
}

func ToTransactionResponse(t domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   t.TransactionID,
		FromCurrency:    t.FromCurrency,
		ToCurrency:      t.ToCurrency,
		Amount:          t.Amount,
		ConvertedAmount: t.ConvertedAmount,
		CommissionFee:   t.CommissionFee,
		CreatedAt:       t.CreatedAt,
	}
}

func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(txns))
	for i, t := range txns {
		out[i] = ToTransactionResponse(t)
	}
	return out
}

type TransactionCountResponse struct {
	Count int `json:"count"`
}
