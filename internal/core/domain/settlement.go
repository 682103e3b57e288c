package domain

// Settlement is the input to settle: the caller has already confirmed
// affordability and obtained ConvertedAmount from a conversion.
type Settlement struct {
	FromCurrency    string
	ToCurrency      string
	SourceAmount    float64
	ConvertedAmount float64
}

// Quote is a conversion together with the commission a settle would record now.
type Quote struct {
	Conversion
	CommissionFeeRate float64 `json:"commissionFeeRate"`
	CommissionFee     float64 `json:"commissionFee"`
}
