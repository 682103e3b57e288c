package domain

const (
	// FreeTransactionCount is how many conversions are charged no commission.
	FreeTransactionCount = 5
	// CommissionRate is the fee fraction charged once the free conversions are used up.
	CommissionRate = 0.007
)

// CommissionFeeRate maps the number of transactions recorded before the
// current one to the fee fraction charged on it.
func CommissionFeeRate(priorTransactionCount int) float64 {
	if priorTransactionCount < FreeTransactionCount {
		return 0.0
	}
	return CommissionRate
}

// CommissionFee is the fee, in source currency, for a conversion of
// sourceAmount. It is recorded on the transaction but not deducted from the
// credited amount.
func CommissionFee(priorTransactionCount int, sourceAmount float64) float64 {
	return RoundMinor(CommissionFeeRate(priorTransactionCount) * sourceAmount)
}
