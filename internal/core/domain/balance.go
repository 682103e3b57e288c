package domain

// Balance is the current holding for one currency code.
// Created lazily at zero, mutated only through debit/credit, never deleted.
type Balance struct {
	CurrencyCode string  `json:"currencyCode"` // Primary Key
	Amount       float64 `json:"amount"`
	AuditFields
}

// CanAfford reports whether the balance covers amount.
func (b *Balance) CanAfford(amount float64) bool {
	if b == nil {
		return amount <= 0
	}
	return b.Amount >= amount
}
