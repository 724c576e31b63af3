package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/salestrackhq/salestrack_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the pgx-backed repositories.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo: newPgxAccountRepository(dbPool),
		RecordRepo:  newPgxRecordRepository(dbPool),
	}
}
