package pgsql

import (
	"context"

	"github.com/SscSPs/lease_management_app/internal/apperrors"
	"github.com/SscSPs/lease_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/lease_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/lease_management_app/internal/models"
	"github.com/SscSPs/lease_management_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

const ownershipColumns = `ownership_id, unit_id, party_id, start_date, end_date, status, ` + auditColumns

type PgxOwnershipRepository struct {
	BaseRepository
}

func newPgxOwnershipRepository(pool *pgxpool.Pool) portsrepo.OwnershipRepositoryFacade {
	return &PgxOwnershipRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.OwnershipRepositoryFacade = (*PgxOwnershipRepository)(nil)

// SaveOwnership inserts a record. The partial unique index
// uq_unit_ownerships_active rejects a second ACTIVE record per unit, which
// closes the race between two concurrent assignments.
func (r *PgxOwnershipRepository) SaveOwnership(ctx context.Context, record domain.OwnershipRecord) error {
	m := mapping.ToModelOwnership(record)
	query := `INSERT INTO unit_ownerships (` + ownershipColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`
	_, err := r.Pool.Exec(ctx, query,
		m.OwnershipID, m.UnitID, m.PartyID, m.StartDate, m.EndDate, m.Status,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy, m.Version,
	)
	if err != nil {
		return translatePgError(err, "ownership of unit "+m.UnitID)
	}
	return nil
}

func (r *PgxOwnershipRepository) EndOwnership(ctx context.Context, record domain.OwnershipRecord, expectedVersion int64) error {
	m := mapping.ToModelOwnership(record)
	query := `
		UPDATE unit_ownerships SET end_date = $3, status = $4, last_updated_at = $5, last_updated_by = $6, version = $7
		WHERE ownership_id = $1 AND version = $2;`
	return casExec(ctx, r.Pool, "ownership "+m.OwnershipID, query,
		m.OwnershipID, expectedVersion, m.EndDate, m.Status, m.LastUpdatedAt, m.LastUpdatedBy, m.Version)
}

func (r *PgxOwnershipRepository) FindActiveOwnership(ctx context.Context, unitID string) (*domain.OwnershipRecord, error) {
	rows, err := collect[models.Ownership](ctx, r.Pool, "unit ownerships",
		`SELECT `+ownershipColumns+` FROM unit_ownerships WHERE unit_id = $1 AND status = 'ACTIVE';`, unitID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, apperrors.NewNotFoundError("unit " + unitID + " has no active owner")
	}
	rec := mapping.ToDomainOwnership(rows[0])
	return &rec, nil
}

func (r *PgxOwnershipRepository) ListOwnershipByUnit(ctx context.Context, unitID string) ([]domain.OwnershipRecord, error) {
	rows, err := collect[models.Ownership](ctx, r.Pool, "unit ownerships",
		`SELECT `+ownershipColumns+` FROM unit_ownerships WHERE unit_id = $1 ORDER BY start_date DESC, created_at DESC;`, unitID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.OwnershipRecord, len(rows))
	for i, m := range rows {
		out[i] = mapping.ToDomainOwnership(m)
	}
	return out, nil
}
