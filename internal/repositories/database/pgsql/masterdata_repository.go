package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/lease_management_app/internal/apperrors"
	"github.com/SscSPs/lease_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/lease_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/lease_management_app/internal/models"
	"github.com/SscSPs/lease_management_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const approvalColumns = `status, submitted_by, submitted_at, reviewed_by, reviewed_at, rejection_reason, edited_since_rejection`
const auditColumns = `created_at, created_by, last_updated_at, last_updated_by, version`

// masterDataWhere builds the WHERE/ORDER/LIMIT tail shared by master-data listings.
func masterDataWhere(filter portsrepo.MasterDataFilter, extra map[string]string) (string, []any) {
	var conds []string
	var args []any
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	for column, value := range extra {
		if value == "" {
			continue
		}
		args = append(args, value)
		conds = append(conds, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	where := ""
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	args = append(args, limit, offset)
	return fmt.Sprintf("%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d", where, len(args)-1, len(args)), args
}

func collect[M any](ctx context.Context, q querier, what string, query string, args ...any) ([]M, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query "+what, err)
	}
	defer rows.Close()
	out, err := pgx.CollectRows(rows, pgx.RowToStructByName[M])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan "+what, err)
	}
	return out, nil
}

// --- Projects ---

const projectColumns = `project_id, name, code, address, city, ` + approvalColumns + `, ` + auditColumns

type PgxProjectRepository struct {
	BaseRepository
}

func newPgxProjectRepository(pool *pgxpool.Pool) portsrepo.ProjectRepositoryFacade {
	return &PgxProjectRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ProjectRepositoryFacade = (*PgxProjectRepository)(nil)

func (r *PgxProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	m := mapping.ToModelProject(project)
	query := `INSERT INTO projects (` + projectColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);`
	_, err := r.Pool.Exec(ctx, query,
		m.ProjectID, m.Name, m.Code, m.Address, m.City,
		m.Status, m.SubmittedBy, m.SubmittedAt, m.ReviewedBy, m.ReviewedAt, m.RejectionReason, m.EditedSinceRejection,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy, m.Version,
	)
	if err != nil {
		return translatePgError(err, "project "+m.ProjectID)
	}
	return nil
}

func (r *PgxProjectRepository) UpdateProject(ctx context.Context, project domain.Project, expectedVersion int64) error {
	m := mapping.ToModelProject(project)
	query := `
		UPDATE projects SET name = $3, code = $4, address = $5, city = $6,
			status = $7, submitted_by = $8, submitted_at = $9, reviewed_by = $10, reviewed_at = $11,
			rejection_reason = $12, edited_since_rejection = $13,
			last_updated_at = $14, last_updated_by = $15, version = $16
		WHERE project_id = $1 AND version = $2;`
	return casExec(ctx, r.Pool, "project "+m.ProjectID, query,
		m.ProjectID, expectedVersion, m.Name, m.Code, m.Address, m.City,
		m.Status, m.SubmittedBy, m.SubmittedAt, m.ReviewedBy, m.ReviewedAt, m.RejectionReason, m.EditedSinceRejection,
		m.LastUpdatedAt, m.LastUpdatedBy, m.Version,
	)
}

func (r *PgxProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	rows, err := collect[models.Project](ctx, r.Pool, "projects",
		`SELECT `+projectColumns+` FROM projects WHERE project_id = $1;`, projectID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, apperrors.NewNotFoundError("project " + projectID + " not found")
	}
	p := mapping.ToDomainProject(rows[0])
	return &p, nil
}

func (r *PgxProjectRepository) ListProjects(ctx context.Context, filter portsrepo.MasterDataFilter) ([]domain.Project, error) {
	tail, args := masterDataWhere(filter, nil)
	rows, err := collect[models.Project](ctx, r.Pool, "projects", `SELECT `+projectColumns+` FROM projects `+tail+`;`, args...)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Project, len(rows))
	for i, m := range rows {
		out[i] = mapping.ToDomainProject(m)
	}
	return out, nil
}

// --- Units ---

const unitColumns = `unit_id, project_id, unit_number, floor, area_sq_ft, unit_type, ` + approvalColumns + `, ` + auditColumns

type PgxUnitRepository struct {
	BaseRepository
}

func newPgxUnitRepository(pool *pgxpool.Pool) portsrepo.UnitRepositoryFacade {
	return &PgxUnitRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.UnitRepositoryFacade = (*PgxUnitRepository)(nil)

func (r *PgxUnitRepository) SaveUnit(ctx context.Context, unit domain.Unit) error {
	m := mapping.ToModelUnit(unit)
	query := `INSERT INTO units (` + unitColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);`
	_, err := r.Pool.Exec(ctx, query,
		m.UnitID, m.ProjectID, m.UnitNumber, m.Floor, m.AreaSqFt, m.UnitType,
		m.Status, m.SubmittedBy, m.SubmittedAt, m.ReviewedBy, m.ReviewedAt, m.RejectionReason, m.EditedSinceRejection,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy, m.Version,
	)
	if err != nil {
		return translatePgError(err, "unit "+m.UnitID)
	}
	return nil
}

func (r *PgxUnitRepository) UpdateUnit(ctx context.Context, unit domain.Unit, expectedVersion int64) error {
	m := mapping.ToModelUnit(unit)
	query := `
		UPDATE units SET project_id = $3, unit_number = $4, floor = $5, area_sq_ft = $6, unit_type = $7,
			status = $8, submitted_by = $9, submitted_at = $10, reviewed_by = $11, reviewed_at = $12,
			rejection_reason = $13, edited_since_rejection = $14,
			last_updated_at = $15, last_updated_by = $16, version = $17
		WHERE unit_id = $1 AND version = $2;`
	return casExec(ctx, r.Pool, "unit "+m.UnitID, query,
		m.UnitID, expectedVersion, m.ProjectID, m.UnitNumber, m.Floor, m.AreaSqFt, m.UnitType,
		m.Status, m.SubmittedBy, m.SubmittedAt, m.ReviewedBy, m.ReviewedAt, m.RejectionReason, m.EditedSinceRejection,
		m.LastUpdatedAt, m.LastUpdatedBy, m.Version,
	)
}

func (r *PgxUnitRepository) FindUnitByID(ctx context.Context, unitID string) (*domain.Unit, error) {
	rows, err := collect[models.Unit](ctx, r.Pool, "units",
		`SELECT `+unitColumns+` FROM units WHERE unit_id = $1;`, unitID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, apperrors.NewNotFoundError("unit " + unitID + " not found")
	}
	u := mapping.ToDomainUnit(rows[0])
	return &u, nil
}

func (r *PgxUnitRepository) ListUnits(ctx context.Context, filter portsrepo.MasterDataFilter) ([]domain.Unit, error) {
	tail, args := masterDataWhere(filter, map[string]string{"project_id": filter.ProjectID})
	rows, err := collect[models.Unit](ctx, r.Pool, "units", `SELECT `+unitColumns+` FROM units `+tail+`;`, args...)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Unit, len(rows))
	for i, m := range rows {
		out[i] = mapping.ToDomainUnit(m)
	}
	return out, nil
}

// --- Parties ---

const partyColumns = `party_id, party_type, role, first_name, last_name, company_name, email, phone,
	id_type, id_number, address, ` + approvalColumns + `, ` + auditColumns

type PgxPartyRepository struct {
	BaseRepository
}

func newPgxPartyRepository(pool *pgxpool.Pool) portsrepo.PartyRepositoryFacade {
	return &PgxPartyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PartyRepositoryFacade = (*PgxPartyRepository)(nil)

func (r *PgxPartyRepository) SaveParty(ctx context.Context, party domain.Party) error {
	m := mapping.ToModelParty(party)
	query := `INSERT INTO parties (` + partyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23);`
	_, err := r.Pool.Exec(ctx, query,
		m.PartyID, m.PartyType, m.Role, m.FirstName, m.LastName, m.CompanyName, m.Email, m.Phone,
		m.IDType, m.IDNumber, m.Address,
		m.Status, m.SubmittedBy, m.SubmittedAt, m.ReviewedBy, m.ReviewedAt, m.RejectionReason, m.EditedSinceRejection,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy, m.Version,
	)
	if err != nil {
		return translatePgError(err, "party "+m.PartyID)
	}
	return nil
}

func (r *PgxPartyRepository) UpdateParty(ctx context.Context, party domain.Party, expectedVersion int64) error {
	m := mapping.ToModelParty(party)
	query := `
		UPDATE parties SET party_type = $3, role = $4, first_name = $5, last_name = $6, company_name = $7,
			email = $8, phone = $9, id_type = $10, id_number = $11, address = $12,
			status = $13, submitted_by = $14, submitted_at = $15, reviewed_by = $16, reviewed_at = $17,
			rejection_reason = $18, edited_since_rejection = $19,
			last_updated_at = $20, last_updated_by = $21, version = $22
		WHERE party_id = $1 AND version = $2;`
	return casExec(ctx, r.Pool, "party "+m.PartyID, query,
		m.PartyID, expectedVersion, m.PartyType, m.Role, m.FirstName, m.LastName, m.CompanyName,
		m.Email, m.Phone, m.IDType, m.IDNumber, m.Address,
		m.Status, m.SubmittedBy, m.SubmittedAt, m.ReviewedBy, m.ReviewedAt, m.RejectionReason, m.EditedSinceRejection,
		m.LastUpdatedAt, m.LastUpdatedBy, m.Version,
	)
}

func (r *PgxPartyRepository) FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	rows, err := collect[models.Party](ctx, r.Pool, "parties",
		`SELECT `+partyColumns+` FROM parties WHERE party_id = $1;`, partyID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, apperrors.NewNotFoundError("party " + partyID + " not found")
	}
	p := mapping.ToDomainParty(rows[0])
	return &p, nil
}

func (r *PgxPartyRepository) ListParties(ctx context.Context, filter portsrepo.MasterDataFilter) ([]domain.Party, error) {
	tail, args := masterDataWhere(filter, map[string]string{"role": string(filter.Role)})
	rows, err := collect[models.Party](ctx, r.Pool, "parties", `SELECT `+partyColumns+` FROM parties `+tail+`;`, args...)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Party, len(rows))
	for i, m := range rows {
		out[i] = mapping.ToDomainParty(m)
	}
	return out, nil
}
