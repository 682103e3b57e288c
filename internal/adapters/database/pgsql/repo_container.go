package pgsql

import (
	portsrepo "github.com/SscSPs/currency_exchanger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the Postgres ledger with the given rate source.
func NewRepositoryProvider(dbPool *pgxpool.Pool, rateSource portsrepo.RateSource) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		Ledger:     NewLedgerRepository(dbPool),
		RateSource: rateSource,
	}
}
