package dto

import (
	"time"

	"github.com/SscSPs/currency_exchanger/internal/session"
)

// SessionCommandRequest is one screen interaction.
type SessionCommandRequest struct {
	Type  string `json:"type" binding:"required"`
	Value string `json:"value"`
}

type SessionResponse struct {
	Rates             *RateTableResponse `json:"rates,omitempty"`
	Balances          []BalanceResponse  `json:"balances"`
	Amount            string             `json:"amount"`
	FromCurrency      string             `json:"fromCurrency"`
	ToCurrency        string             `json:"toCurrency"`
	CommissionFeeRate float64            `json:"commissionFeeRate"`
	ConvertedAmount   float64            `json:"convertedAmount"`
	CanConvert        bool               `json:"canConvert"`
	Message           string             `json:"message"`
	UpdatedAt         time.Time          `json:"updatedAt"`
}

func ToSessionResponse(s session.Snapshot) SessionResponse {
	return SessionResponse{
		Rates:             ToRateTableResponse(s.Rates),
		Balances:          ToListBalanceResponse(s.Balances),
		Amount:            s.Amount,
		FromCurrency:      s.FromCurrency,
		ToCurrency:        s.ToCurrency,
		CommissionFeeRate: s.CommissionFeeRate,
		ConvertedAmount:   s.ConvertedAmount,
		CanConvert:        s.CanConvert,
		Message:           s.Message,
		UpdatedAt:         s.UpdatedAt,
	}
}
