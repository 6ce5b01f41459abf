package dto

import (
	"time"

	"github.com/SscSPs/lease_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EscalationStepDTO is one scheduled rent adjustment.
// Value is a percentage for PERCENTAGE steps and minor units for FIXED_AMOUNT steps.
type EscalationStepDTO struct {
	EffectiveFrom domain.Date     `json:"effective_from"`
	IncreaseType  string          `json:"increase_type"`
	Value         decimal.Decimal `json:"value"`
}

// LeaseTerms are the editable fields of a lease. Money amounts are integer
// minor units of Currency. Invariants are checked by the domain so that
// every violation is reported together.
type LeaseTerms struct {
	LeaseType              string              `json:"lease_type"`
	RentModel              string              `json:"rent_model"`
	ProjectID              string              `json:"project_id"`
	UnitID                 string              `json:"unit_id"`
	TenantID               string              `json:"tenant_id"`
	OwnerID                string              `json:"owner_id"`
	LessorPartyID          string              `json:"lessor_party_id,omitempty"`
	SubLeaseAreaSqFt       *decimal.Decimal    `json:"sub_lease_area_sq_ft,omitempty"`
	Currency               string              `json:"currency"`
	LeaseStart             domain.Date         `json:"lease_start"`
	LeaseEnd               domain.Date         `json:"lease_end"`
	RentCommencementDate   domain.Date         `json:"rent_commencement_date"`
	LockinPeriodMonths     int                 `json:"lockin_period_months"`
	NoticePeriodMonths     int                 `json:"notice_period_months"`
	MonthlyRent            *int64              `json:"monthly_rent,omitempty"`
	MGR                    *int64              `json:"mgr,omitempty"`
	RevenueSharePercentage *decimal.Decimal    `json:"revenue_share_percentage,omitempty"`
	ApplicableOn           string              `json:"applicable_on,omitempty"`
	CamCharges             int64               `json:"cam_charges"`
	SecurityDeposit        int64               `json:"security_deposit"`
	DepositType            string              `json:"deposit_type"`
	BillingFrequency       string              `json:"billing_frequency"`
	PaymentDueDay          int                 `json:"payment_due_day"`
	Escalations            []EscalationStepDTO `json:"escalations"`
}

// CreateLeaseRequest creates a Draft lease.
type CreateLeaseRequest struct {
	LeaseTerms
}

// UpdateLeaseRequest replaces a lease's terms. When Version is set it must
// match the stored version.
type UpdateLeaseRequest struct {
	LeaseTerms
	Version *int64 `json:"version,omitempty"`
}

// RejectRequest carries the reviewer's reason.
type RejectRequest struct {
	Reason string `json:"reason"`
}

// ApplyTo copies the terms onto l and recomputes derived fields. Identity,
// revision links, approval state and audit fields are left alone.
func (t LeaseTerms) ApplyTo(l *domain.Lease) {
	l.LeaseType = domain.LeaseType(t.LeaseType)
	l.RentModel = domain.RentModel(t.RentModel)
	l.ProjectID = t.ProjectID
	l.UnitID = t.UnitID
	l.TenantID = t.TenantID
	l.OwnerID = t.OwnerID
	l.LessorPartyID = t.LessorPartyID
	l.SubLeaseAreaSqFt = t.SubLeaseAreaSqFt
	l.Currency = t.Currency
	l.LeaseStart = t.LeaseStart
	l.LeaseEnd = t.LeaseEnd
	l.RentCommencementDate = t.RentCommencementDate
	l.LockinPeriodMonths = t.LockinPeriodMonths
	l.NoticePeriodMonths = t.NoticePeriodMonths
	l.MonthlyRent = moneyPtr(t.MonthlyRent, t.Currency)
	l.MinimumGuarantee = moneyPtr(t.MGR, t.Currency)
	l.RevenueSharePercentage = t.RevenueSharePercentage
	l.ApplicableOn = domain.RevenueBasis(t.ApplicableOn)
	l.CamCharges = domain.NewMoney(t.CamCharges, t.Currency)
	l.SecurityDeposit = domain.NewMoney(t.SecurityDeposit, t.Currency)
	l.DepositType = domain.DepositType(t.DepositType)
	l.BillingFrequency = domain.BillingFrequency(t.BillingFrequency)
	l.PaymentDueDay = t.PaymentDueDay
	l.Escalations = make([]domain.EscalationStep, len(t.Escalations))
	for i, s := range t.Escalations {
		l.Escalations[i] = domain.EscalationStep{
			EffectiveFrom: s.EffectiveFrom,
			IncreaseType:  domain.IncreaseType(s.IncreaseType),
			Value:         s.Value,
		}
	}
	l.Normalize()
}

func moneyPtr(amount *int64, currency string) *domain.Money {
	if amount == nil {
		return nil
	}
	m := domain.NewMoney(*amount, currency)
	return &m
}

func amountPtr(m *domain.Money) *int64 {
	if m == nil {
		return nil
	}
	a := m.Amount
	return &a
}

// ToLeaseTerms extracts the editable fields of l.
func ToLeaseTerms(l *domain.Lease) LeaseTerms {
	steps := make([]EscalationStepDTO, len(l.Escalations))
	for i, s := range l.Escalations {
		steps[i] = EscalationStepDTO{
			EffectiveFrom: s.EffectiveFrom,
			IncreaseType:  string(s.IncreaseType),
			Value:         s.Value,
		}
	}
	return LeaseTerms{
		LeaseType:              string(l.LeaseType),
		RentModel:              string(l.RentModel),
		ProjectID:              l.ProjectID,
		UnitID:                 l.UnitID,
		TenantID:               l.TenantID,
		OwnerID:                l.OwnerID,
		LessorPartyID:          l.LessorPartyID,
		SubLeaseAreaSqFt:       l.SubLeaseAreaSqFt,
		Currency:               l.Currency,
		LeaseStart:             l.LeaseStart,
		LeaseEnd:               l.LeaseEnd,
		RentCommencementDate:   l.RentCommencementDate,
		LockinPeriodMonths:     l.LockinPeriodMonths,
		NoticePeriodMonths:     l.NoticePeriodMonths,
		MonthlyRent:            amountPtr(l.MonthlyRent),
		MGR:                    amountPtr(l.MinimumGuarantee),
		RevenueSharePercentage: l.RevenueSharePercentage,
		ApplicableOn:           string(l.ApplicableOn),
		CamCharges:             l.CamCharges.Amount,
		SecurityDeposit:        l.SecurityDeposit.Amount,
		DepositType:            string(l.DepositType),
		BillingFrequency:       string(l.BillingFrequency),
		PaymentDueDay:          l.PaymentDueDay,
		Escalations:            steps,
	}
}

// ApprovalInfo is the workflow state shared by every approvable response.
type ApprovalInfo struct {
	Status               string     `json:"status"`
	SubmittedBy          string     `json:"submitted_by,omitempty"`
	SubmittedAt          *time.Time `json:"submitted_at,omitempty"`
	ReviewedBy           string     `json:"reviewed_by,omitempty"`
	ReviewedAt           *time.Time `json:"reviewed_at,omitempty"`
	RejectionReason      string     `json:"rejection_reason,omitempty"`
	EditedSinceRejection bool       `json:"edited_since_rejection"`
}

// AuditInfo mirrors domain.AuditFields.
type AuditInfo struct {
	CreatedAt     time.Time `json:"created_at"`
	CreatedBy     string    `json:"created_by"`
	LastUpdatedAt time.Time `json:"last_updated_at"`
	LastUpdatedBy string    `json:"last_updated_by"`
	Version       int64     `json:"version"`
}

func toApprovalInfo(a domain.Approval) ApprovalInfo {
	return ApprovalInfo{
		Status:               string(a.Status),
		SubmittedBy:          a.SubmittedBy,
		SubmittedAt:          a.SubmittedAt,
		ReviewedBy:           a.ReviewedBy,
		ReviewedAt:           a.ReviewedAt,
		RejectionReason:      a.RejectionReason,
		EditedSinceRejection: a.EditedSinceRejection,
	}
}

func (a ApprovalInfo) toDomain() domain.Approval {
	return domain.Approval{
		Status:               domain.ApprovalStatus(a.Status),
		SubmittedBy:          a.SubmittedBy,
		SubmittedAt:          a.SubmittedAt,
		ReviewedBy:           a.ReviewedBy,
		ReviewedAt:           a.ReviewedAt,
		RejectionReason:      a.RejectionReason,
		EditedSinceRejection: a.EditedSinceRejection,
	}
}

func toAuditInfo(a domain.AuditFields) AuditInfo {
	return AuditInfo{
		CreatedAt:     a.CreatedAt,
		CreatedBy:     a.CreatedBy,
		LastUpdatedAt: a.LastUpdatedAt,
		LastUpdatedBy: a.LastUpdatedBy,
		Version:       a.Version,
	}
}

func (a AuditInfo) toDomain() domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     a.CreatedAt,
		CreatedBy:     a.CreatedBy,
		LastUpdatedAt: a.LastUpdatedAt,
		LastUpdatedBy: a.LastUpdatedBy,
		Version:       a.Version,
	}
}

// LeaseResponse is the external representation of a lease.
type LeaseResponse struct {
	ID string `json:"id"`
	LeaseTerms
	DurationMonths     int    `json:"duration_months"`
	Revision           int    `json:"revision"`
	PreviousRevisionID string `json:"previous_revision_id,omitempty"`
	SupersededByID     string `json:"superseded_by_id,omitempty"`
	ApprovalInfo
	AuditInfo
}

// ToLeaseResponse converts a domain.Lease to its external representation.
func ToLeaseResponse(l *domain.Lease) LeaseResponse {
	return LeaseResponse{
		ID:                 l.LeaseID,
		LeaseTerms:         ToLeaseTerms(l),
		DurationMonths:     l.DurationMonths,
		Revision:           l.Revision,
		PreviousRevisionID: l.PreviousRevisionID,
		SupersededByID:     l.SupersededByID,
		ApprovalInfo:       toApprovalInfo(l.Approval),
		AuditInfo:          toAuditInfo(l.AuditFields),
	}
}

// ToDomain parses the external representation back into a lease.
// DurationMonths is recomputed rather than trusted.
func (r LeaseResponse) ToDomain() domain.Lease {
	l := domain.Lease{
		LeaseID:            r.ID,
		Revision:           r.Revision,
		PreviousRevisionID: r.PreviousRevisionID,
		SupersededByID:     r.SupersededByID,
		Approval:           r.ApprovalInfo.toDomain(),
		AuditFields:        r.AuditInfo.toDomain(),
	}
	r.LeaseTerms.ApplyTo(&l)
	return l
}

// ListLeasesParams are the query parameters of GET /leases.
type ListLeasesParams struct {
	Status    string `form:"status" binding:"omitempty,oneof=DRAFT PENDING_APPROVAL APPROVED REJECTED"`
	ProjectID string `form:"projectId"`
	UnitID    string `form:"unitId"`
	Limit     int    `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken string `form:"next_token"`
}

// ListLeasesResponse is one page of leases.
type ListLeasesResponse struct {
	Leases    []LeaseResponse `json:"leases"`
	NextToken *string         `json:"next_token,omitempty"`
}

// ToListLeasesResponse converts a page of leases.
func ToListLeasesResponse(leases []domain.Lease, nextToken *string) ListLeasesResponse {
	out := make([]LeaseResponse, len(leases))
	for i := range leases {
		out[i] = ToLeaseResponse(&leases[i])
	}
	return ListLeasesResponse{Leases: out, NextToken: nextToken}
}
