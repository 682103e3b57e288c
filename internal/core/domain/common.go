package domain

import "time"

// AuditFields holds timestamps shared by persisted ledger entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}
