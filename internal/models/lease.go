package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lease is a row of the leases table. Money columns are minor units in
// currency_code; nullable rent components are pointers.
type Lease struct {
	LeaseID                string              `db:"lease_id"`
	LeaseType              string              `db:"lease_type"`
	RentModel              string              `db:"rent_model"`
	ProjectID              string              `db:"project_id"`
	UnitID                 string              `db:"unit_id"`
	TenantID               string              `db:"tenant_id"`
	OwnerID                string              `db:"owner_id"`
	LessorPartyID          *string             `db:"lessor_party_id"`
	SubLeaseAreaSqFt       decimal.NullDecimal `db:"sub_lease_area_sq_ft"`
	CurrencyCode           string              `db:"currency_code"`
	LeaseStart             time.Time           `db:"lease_start"`
	LeaseEnd               time.Time           `db:"lease_end"`
	RentCommencementDate   time.Time           `db:"rent_commencement_date"`
	DurationMonths         int                 `db:"duration_months"`
	LockinPeriodMonths     int                 `db:"lockin_period_months"`
	NoticePeriodMonths     int                 `db:"notice_period_months"`
	MonthlyRent            *int64              `db:"monthly_rent"`
	MinimumGuarantee       *int64              `db:"mgr"`
	RevenueSharePercentage decimal.NullDecimal `db:"revenue_share_percentage"`
	ApplicableOn           *string             `db:"applicable_on"`
	CamCharges             int64               `db:"cam_charges"`
	SecurityDeposit        int64               `db:"security_deposit"`
	DepositType            string              `db:"deposit_type"`
	BillingFrequency       string              `db:"billing_frequency"`
	PaymentDueDay          int                 `db:"payment_due_day"`
	Revision               int                 `db:"revision"`
	PreviousRevisionID     *string             `db:"previous_revision_id"`
	SupersededByID         *string             `db:"superseded_by_id"`
	ApprovalColumns
	AuditFields
}

// LeaseEscalation is a row of lease_escalations; seq keeps insertion order.
type LeaseEscalation struct {
	LeaseID       string          `db:"lease_id"`
	Seq           int             `db:"seq"`
	EffectiveFrom time.Time       `db:"effective_from"`
	IncreaseType  string          `db:"increase_type"`
	Value         decimal.Decimal `db:"value"`
}
