package pgsql

import (
	"context"
	"errors"
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

const leaseColumns = `lease_id, lease_type, rent_model, project_id, unit_id, tenant_id, owner_id,
	lessor_party_id, sub_lease_area_sq_ft, currency_code, lease_start, lease_end, rent_commencement_date,
	duration_months, lockin_period_months, notice_period_months, monthly_rent, mgr,
	revenue_share_percentage, applicable_on, cam_charges, security_deposit, deposit_type,
	billing_frequency, payment_due_day, revision, previous_revision_id, superseded_by_id,
	status, submitted_by, submitted_at, reviewed_by, reviewed_at, rejection_reason, edited_since_rejection,
	created_at, created_by, last_updated_at, last_updated_by, version`

type PgxLeaseRepository struct {
	BaseRepository
}

func newPgxLeaseRepository(pool *pgxpool.Pool) portsrepo.LeaseRepositoryWithTx {
	return &PgxLeaseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LeaseRepositoryWithTx = (*PgxLeaseRepository)(nil)

// SaveLease inserts the lease row and its escalation steps in one transaction.
func (r *PgxLeaseRepository) SaveLease(ctx context.Context, lease domain.Lease) error {
	m, steps := mapping.ToModelLease(lease)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // no-op once committed

	query := `INSERT INTO leases (` + leaseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
			$21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32, $33, $34, $35, $36, $37, $38, $39, $40);`
	_, err = tx.Exec(ctx, query,
		m.LeaseID, m.LeaseType, m.RentModel, m.ProjectID, m.UnitID, m.TenantID, m.OwnerID,
		m.LessorPartyID, m.SubLeaseAreaSqFt, m.CurrencyCode, m.LeaseStart, m.LeaseEnd, m.RentCommencementDate,
		m.DurationMonths, m.LockinPeriodMonths, m.NoticePeriodMonths, m.MonthlyRent, m.MinimumGuarantee,
		m.RevenueSharePercentage, m.ApplicableOn, m.CamCharges, m.SecurityDeposit, m.DepositType,
		m.BillingFrequency, m.PaymentDueDay, m.Revision, m.PreviousRevisionID, m.SupersededByID,
		m.Status, m.SubmittedBy, m.SubmittedAt, m.ReviewedBy, m.ReviewedAt, m.RejectionReason, m.EditedSinceRejection,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy, m.Version,
	)
	if err != nil {
		return translatePgError(err, "lease "+m.LeaseID)
	}

	if err := insertEscalations(ctx, tx, steps); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// UpdateLease rewrites the lease and replaces its escalation steps.
func (r *PgxLeaseRepository) UpdateLease(ctx context.Context, lease domain.Lease, expectedVersion int64) error {
	m, steps := mapping.ToModelLease(lease)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE leases SET
			lease_type = $3, rent_model = $4, project_id = $5, unit_id = $6, tenant_id = $7, owner_id = $8,
			lessor_party_id = $9, sub_lease_area_sq_ft = $10, currency_code = $11, lease_start = $12,
			lease_end = $13, rent_commencement_date = $14, duration_months = $15, lockin_period_months = $16,
			notice_period_months = $17, monthly_rent = $18, mgr = $19, revenue_share_percentage = $20,
			applicable_on = $21, cam_charges = $22, security_deposit = $23, deposit_type = $24,
			billing_frequency = $25, payment_due_day = $26,
			status = $27, submitted_by = $28, submitted_at = $29, reviewed_by = $30, reviewed_at = $31,
			rejection_reason = $32, edited_since_rejection = $33,
			last_updated_at = $34, last_updated_by = $35, version = $36
		WHERE lease_id = $1 AND version = $2;`
	err = casExec(ctx, tx, "lease "+m.LeaseID, query,
		m.LeaseID, expectedVersion,
		m.LeaseType, m.RentModel, m.ProjectID, m.UnitID, m.TenantID, m.OwnerID,
		m.LessorPartyID, m.SubLeaseAreaSqFt, m.CurrencyCode, m.LeaseStart,
		m.LeaseEnd, m.RentCommencementDate, m.DurationMonths, m.LockinPeriodMonths,
		m.NoticePeriodMonths, m.MonthlyRent, m.MinimumGuarantee, m.RevenueSharePercentage,
		m.ApplicableOn, m.CamCharges, m.SecurityDeposit, m.DepositType,
		m.BillingFrequency, m.PaymentDueDay,
		m.Status, m.SubmittedBy, m.SubmittedAt, m.ReviewedBy, m.ReviewedAt,
		m.RejectionReason, m.EditedSinceRejection,
		m.LastUpdatedAt, m.LastUpdatedBy, m.Version,
	)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM lease_escalations WHERE lease_id = $1;`, m.LeaseID); err != nil {
		return apperrors.NewAppError(500, "failed to clear escalations for lease "+m.LeaseID, err)
	}
	if err := insertEscalations(ctx, tx, steps); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// UpdateLeaseApproval writes the workflow columns. When a revision becomes
// APPROVED the revision it replaces is marked superseded in the same transaction.
func (r *PgxLeaseRepository) UpdateLeaseApproval(ctx context.Context, lease domain.Lease, expectedVersion int64) error {
	m, _ := mapping.ToModelLease(lease)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE leases SET
			status = $3, submitted_by = $4, submitted_at = $5, reviewed_by = $6, reviewed_at = $7,
			rejection_reason = $8, edited_since_rejection = $9,
			last_updated_at = $10, last_updated_by = $11, version = $12
		WHERE lease_id = $1 AND version = $2;`
	err = casExec(ctx, tx, "lease "+m.LeaseID, query,
		m.LeaseID, expectedVersion,
		m.Status, m.SubmittedBy, m.SubmittedAt, m.ReviewedBy, m.ReviewedAt,
		m.RejectionReason, m.EditedSinceRejection,
		m.LastUpdatedAt, m.LastUpdatedBy, m.Version,
	)
	if err != nil {
		return err
	}

	if lease.Status == domain.StatusApproved && lease.PreviousRevisionID != "" {
		supersede := `
			UPDATE leases SET superseded_by_id = $2, last_updated_at = $3, last_updated_by = $4, version = version + 1
			WHERE lease_id = $1 AND superseded_by_id IS NULL;`
		err = casExec(ctx, tx, "lease "+lease.PreviousRevisionID, supersede,
			lease.PreviousRevisionID, lease.LeaseID, m.LastUpdatedAt, m.LastUpdatedBy)
		if err != nil {
			return err
		}
	}
	return r.Commit(ctx, tx)
}

func insertEscalations(ctx context.Context, tx pgx.Tx, steps []models.LeaseEscalation) error {
	if len(steps) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	query := `
		INSERT INTO lease_escalations (lease_id, seq, effective_from, increase_type, value)
		VALUES ($1, $2, $3, $4, $5);`
	for _, s := range steps {
		batch.Queue(query, s.LeaseID, s.Seq, s.EffectiveFrom, s.IncreaseType, s.Value)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return translatePgError(err, "escalations for lease "+steps[0].LeaseID)
	}
	return nil
}

// FindLeaseByID retrieves a lease with its escalation steps.
func (r *PgxLeaseRepository) FindLeaseByID(ctx context.Context, leaseID string) (*domain.Lease, error) {
	leases, err := r.getLeases(ctx, `WHERE lease_id = $1`, []any{leaseID}, "")
	if err != nil {
		return nil, err
	}
	if len(leases) == 0 {
		return nil, apperrors.NewNotFoundError("lease " + leaseID + " not found")
	}
	return &leases[0], nil
}

// ListLeases returns one page of leases, newest first.
func (r *PgxLeaseRepository) ListLeases(ctx context.Context, filter portsrepo.LeaseFilter) ([]domain.Lease, error) {
	var conds []string
	var args []any
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if filter.Status != "" {
		add("status = $%d", string(filter.Status))
	}
	if filter.ProjectID != "" {
		add("project_id = $%d", filter.ProjectID)
	}
	if filter.UnitID != "" {
		add("unit_id = $%d", filter.UnitID)
	}
	if filter.AfterCreatedAt != nil {
		args = append(args, *filter.AfterCreatedAt, filter.AfterID)
		conds = append(conds, fmt.Sprintf("(created_at, lease_id) < ($%d, $%d)", len(args)-1, len(args)))
	}

	where := ""
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	args = append(args, limit)
	tail := fmt.Sprintf("ORDER BY created_at DESC, lease_id DESC LIMIT $%d", len(args))
	return r.getLeases(ctx, where, args, tail)
}

func (r *PgxLeaseRepository) getLeases(ctx context.Context, where string, args []any, tail string) ([]domain.Lease, error) {
	query := `SELECT ` + leaseColumns + ` FROM leases ` + where + ` ` + tail + `;`
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query leases", err)
	}
	defer rows.Close()

	modelLeases, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Lease])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan leases", err)
	}
	if len(modelLeases) == 0 {
		return []domain.Lease{}, nil
	}

	ids := make([]string, len(modelLeases))
	for i, m := range modelLeases {
		ids[i] = m.LeaseID
	}
	steps, err := r.escalationsFor(ctx, ids)
	if err != nil {
		return nil, err
	}

	leases := make([]domain.Lease, len(modelLeases))
	for i, m := range modelLeases {
		leases[i] = mapping.ToDomainLease(m, steps[m.LeaseID])
	}
	return leases, nil
}

func (r *PgxLeaseRepository) escalationsFor(ctx context.Context, leaseIDs []string) (map[string][]models.LeaseEscalation, error) {
	query := `
		SELECT lease_id, seq, effective_from, increase_type, value
		FROM lease_escalations
		WHERE lease_id = ANY($1)
		ORDER BY lease_id, seq;`
	rows, err := r.Pool.Query(ctx, query, leaseIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lease escalations", err)
	}
	defer rows.Close()

	all, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.LeaseEscalation])
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewAppError(500, "failed to scan lease escalations", err)
	}
	byLease := make(map[string][]models.LeaseEscalation, len(leaseIDs))
	for _, s := range all {
		byLease[s.LeaseID] = append(byLease[s.LeaseID], s)
	}
	return byLease, nil
}
