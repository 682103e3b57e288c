package dto

import (
	"time"

	"github.com/SscSPs/currency_exchanger/internal/core/domain"
)

// RateTableResponse is the current rate snapshot.
type RateTableResponse struct {
	Base      string             `json:"base"`
	FetchedAt time.Time          `json:"fetchedAt"`
	Rates     map[string]float64 `json:"rates"`
}

// ToRateTableResponse converts a domain.RateTable. A nil table yields nil.
func ToRateTableResponse(table *domain.RateTable) *RateTableResponse {
	if table == nil {
		return nil
	}
	return &RateTableResponse{
		Base:      table.Base(),
		FetchedAt: table.FetchedAt(),
		Rates:     table.Rates(),
	}
}
