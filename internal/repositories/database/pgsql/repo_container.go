package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/cpsys/crypto_payment_system/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the Postgres-backed repositories. The chain
// oracle is not database-backed and is set by the caller.
func NewRepositoryProvider(dbPool *pgxpool.Pool, oracle portsrepo.ChainBalanceOracle) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:    newPgxUserRepository(dbPool),
		StaffRepo:   newPgxStaffRepository(dbPool),
		InvoiceRepo: newPgxInvoiceRepository(dbPool),
		ChainOracle: oracle,
	}
}
