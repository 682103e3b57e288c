package domain

import "time"

// Transaction is the immutable record of one completed conversion.
type Transaction struct {
	TransactionID   string    `json:"transactionID"` // Primary Key (UUID)
	FromCurrency    string    `json:"fromCurrency"`
	ToCurrency      string    `json:"toCurrency"`
	Amount          float64   `json:"amount"`          // debited, source currency
	ConvertedAmount float64   `json:"convertedAmount"` // credited, destination currency
	CommissionFee   float64   `json:"commissionFee"`   // source currency, informational
	CreatedAt       time.Time `json:"createdAt"`
}
