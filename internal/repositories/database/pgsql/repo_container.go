package pgsql

import (
	portsrepo "github.com/SscSPs/lease_management_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		LeaseRepo:     newPgxLeaseRepository(dbPool),
		PartyRepo:     newPgxPartyRepository(dbPool),
		UnitRepo:      newPgxUnitRepository(dbPool),
		ProjectRepo:   newPgxProjectRepository(dbPool),
		OwnershipRepo: newPgxOwnershipRepository(dbPool),
		CurrencyRepo:  newPgxCurrencyRepository(dbPool),
		UserRepo:      newPgxUserRepository(dbPool),
	}
}
