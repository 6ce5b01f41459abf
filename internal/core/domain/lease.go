package domain

import (
	"fmt"
	"regexp"

	"github.com/SscSPs/lease_management_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// LeaseType distinguishes a direct lease from a sub-lease.
type LeaseType string

const (
	LeaseDirect   LeaseType = "DIRECT"
	LeaseSubLease LeaseType = "SUB_LEASE"
)

// RentModel is how rent is priced.
type RentModel string

const (
	RentFixed        RentModel = "FIXED"
	RentRevenueShare RentModel = "REVENUE_SHARE"
	RentHybrid       RentModel = "HYBRID"
)

// RevenueBasis is the revenue figure a revenue share applies to.
type RevenueBasis string

const (
	RevenueNetSales   RevenueBasis = "NET_SALES"
	RevenueGrossSales RevenueBasis = "GROSS_SALES"
)

// BillingFrequency is how often rent is invoiced.
type BillingFrequency string

const (
	BillingMonthly    BillingFrequency = "MONTHLY"
	BillingQuarterly  BillingFrequency = "QUARTERLY"
	BillingHalfYearly BillingFrequency = "HALF_YEARLY"
	BillingYearly     BillingFrequency = "YEARLY"
)

// Months returns the number of months one billing period covers, or 0 if unknown.
func (f BillingFrequency) Months() int {
	switch f {
	case BillingMonthly:
		return 1
	case BillingQuarterly:
		return 3
	case BillingHalfYearly:
		return 6
	case BillingYearly:
		return 12
	}
	return 0
}

// DepositType is the instrument the security deposit is held in.
type DepositType string

const (
	DepositCash          DepositType = "CASH"
	DepositBankGuarantee DepositType = "BANK_GUARANTEE"
	DepositCheque        DepositType = "CHEQUE"
)

func (d DepositType) IsValid() bool {
	switch d {
	case DepositCash, DepositBankGuarantee, DepositCheque:
		return true
	}
	return false
}

// EndOfMonthDueDay denotes rent due on the last day of the month.
const EndOfMonthDueDay = 31

// PaymentDueDayOptions selects which payment due days are accepted.
type PaymentDueDayOptions string

const (
	DueDaysStandard PaymentDueDayOptions = "STANDARD" // 1, 5, 10 or end of month
	DueDaysAny      PaymentDueDayOptions = "ANY"      // any day 1..31
)

// Allows reports whether day is an accepted payment due day.
func (o PaymentDueDayOptions) Allows(day int) bool {
	if o == DueDaysAny {
		return day >= 1 && day <= 31
	}
	switch day {
	case 1, 5, 10, EndOfMonthDueDay:
		return true
	}
	return false
}

// LeaseRules are the configurable parts of lease validation.
type LeaseRules struct {
	DueDays PaymentDueDayOptions
}

// DefaultLeaseRules accepts the standard due day set.
func DefaultLeaseRules() LeaseRules {
	return LeaseRules{DueDays: DueDaysStandard}
}

var currencyCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// Lease is the aggregate root of the lease model. Project, unit, tenant and
// owner are weak references by id.
type Lease struct {
	LeaseID                string           `json:"leaseID"`
	LeaseType              LeaseType        `json:"leaseType"`
	RentModel              RentModel        `json:"rentModel"`
	ProjectID              string           `json:"projectID"`
	UnitID                 string           `json:"unitID"`
	TenantID               string           `json:"tenantID"`
	OwnerID                string           `json:"ownerID"`
	LessorPartyID          string           `json:"lessorPartyID,omitempty"`    // SubLease only: main tenant acting as landlord
	SubLeaseAreaSqFt       *decimal.Decimal `json:"subLeaseAreaSqFt,omitempty"` // SubLease only
	Currency               string           `json:"currency"`
	LeaseStart             Date             `json:"leaseStart"`
	LeaseEnd               Date             `json:"leaseEnd"`
	RentCommencementDate   Date             `json:"rentCommencementDate"`
	DurationMonths         int              `json:"durationMonths"` // Derived from LeaseStart/LeaseEnd
	LockinPeriodMonths     int              `json:"lockinPeriodMonths"`
	NoticePeriodMonths     int              `json:"noticePeriodMonths"`
	MonthlyRent            *Money           `json:"monthlyRent,omitempty"`
	MinimumGuarantee       *Money           `json:"minimumGuarantee,omitempty"`
	RevenueSharePercentage *decimal.Decimal `json:"revenueSharePercentage,omitempty"`
	ApplicableOn           RevenueBasis     `json:"applicableOn,omitempty"`
	CamCharges             Money            `json:"camCharges"`
	SecurityDeposit        Money            `json:"securityDeposit"`
	DepositType            DepositType      `json:"depositType"`
	BillingFrequency       BillingFrequency `json:"billingFrequency"`
	PaymentDueDay          int              `json:"paymentDueDay"`
	Escalations            []EscalationStep `json:"escalations"`
	Revision               int              `json:"revision"`
	PreviousRevisionID     string           `json:"previousRevisionID,omitempty"`
	SupersededByID         string           `json:"supersededByID,omitempty"`
	Approval
	AuditFields
}

func (l *Lease) EntityID() string          { return l.LeaseID }
func (l *Lease) EntityType() EntityType    { return EntityLease }
func (l *Lease) ApprovalState() *Approval  { return &l.Approval }
func (l *Lease) Audit() *AuditFields       { return &l.AuditFields }
func (l *Lease) Validate() error           { return l.ValidateWith(DefaultLeaseRules()) }
func (l *Lease) hasFixedComponent() bool   { return l.RentModel == RentFixed || l.RentModel == RentHybrid }
func (l *Lease) hasRevenueComponent() bool { return l.RentModel == RentRevenueShare || l.RentModel == RentHybrid }

// Normalize recomputes derived fields: the duration and the chronological
// order of escalation steps.
func (l *Lease) Normalize() {
	l.DurationMonths = MonthsBetween(l.LeaseStart, l.LeaseEnd)
	l.Escalations = SortedSteps(l.Escalations)
}

// ValidateWith checks every lease invariant and reports all violations at once.
func (l *Lease) ValidateWith(rules LeaseRules) error {
	ve := &apperrors.ValidationError{}

	for field, id := range map[string]string{
		"project_id": l.ProjectID,
		"unit_id":    l.UnitID,
		"tenant_id":  l.TenantID,
		"owner_id":   l.OwnerID,
	} {
		if id == "" {
			ve.Add(field, id, "is required")
		}
	}
	if l.TenantID != "" && l.TenantID == l.OwnerID {
		ve.Add("tenant_id", l.TenantID, "tenant and owner must be different parties")
	}

	if !currencyCodePattern.MatchString(l.Currency) {
		ve.Add("currency", l.Currency, "must be a 3-letter ISO 4217 code")
	}

	l.validateDates(ve)
	l.validateRentModel(ve)
	l.validateMoney(ve)

	if l.LockinPeriodMonths < 0 {
		ve.Add("lockin_period_months", l.LockinPeriodMonths, "must not be negative")
	}
	if l.NoticePeriodMonths < 0 {
		ve.Add("notice_period_months", l.NoticePeriodMonths, "must not be negative")
	}
	if !l.DepositType.IsValid() {
		ve.Add("deposit_type", l.DepositType, "must be one of CASH, BANK_GUARANTEE, CHEQUE")
	}
	if l.BillingFrequency.Months() == 0 {
		ve.Add("billing_frequency", l.BillingFrequency, "must be one of MONTHLY, QUARTERLY, HALF_YEARLY, YEARLY")
	}
	if !rules.DueDays.Allows(l.PaymentDueDay) {
		if rules.DueDays == DueDaysAny {
			ve.Add("payment_due_day", l.PaymentDueDay, "must be between 1 and 31")
		} else {
			ve.Add("payment_due_day", l.PaymentDueDay, "must be one of 1, 5, 10, 31")
		}
	}

	l.validateEscalations(ve)
	return ve.OrNil()
}

func (l *Lease) validateDates(ve *apperrors.ValidationError) {
	if l.LeaseStart.IsZero() {
		ve.Add("lease_start", nil, "is required")
	}
	if l.LeaseEnd.IsZero() {
		ve.Add("lease_end", nil, "is required")
	}
	if !l.LeaseStart.IsZero() && !l.LeaseEnd.IsZero() && !l.LeaseEnd.After(l.LeaseStart) {
		ve.Add("lease_end", l.LeaseEnd.String(), "must be after lease_start")
	}
	if l.RentCommencementDate.IsZero() {
		ve.Add("rent_commencement_date", nil, "is required")
	} else if l.RentCommencementDate.Before(l.LeaseStart) {
		ve.Add("rent_commencement_date", l.RentCommencementDate.String(), "must not be before lease_start")
	}
}

func (l *Lease) validateRentModel(ve *apperrors.ValidationError) {
	switch l.LeaseType {
	case LeaseDirect:
	case LeaseSubLease:
		if l.RentModel != RentFixed {
			ve.Add("rent_model", l.RentModel, "sub-leases must use the FIXED rent model")
		}
		if l.SubLeaseAreaSqFt == nil || !l.SubLeaseAreaSqFt.IsPositive() {
			ve.Add("sub_lease_area_sq_ft", l.SubLeaseAreaSqFt, "must be positive for sub-leases")
		}
		if l.LessorPartyID == "" {
			ve.Add("lessor_party_id", l.LessorPartyID, "is required for sub-leases")
		}
	default:
		ve.Add("lease_type", l.LeaseType, "must be one of DIRECT, SUB_LEASE")
	}

	switch l.RentModel {
	case RentFixed, RentRevenueShare, RentHybrid:
	default:
		ve.Add("rent_model", l.RentModel, "must be one of FIXED, REVENUE_SHARE, HYBRID")
		return
	}

	if l.hasFixedComponent() && l.MonthlyRent == nil {
		ve.Add("monthly_rent", nil, fmt.Sprintf("is required for %s leases", l.RentModel))
	}
	if l.hasRevenueComponent() {
		if l.RentModel == RentRevenueShare && l.MinimumGuarantee == nil {
			ve.Add("mgr", nil, "is required for REVENUE_SHARE leases")
		}
		if l.RevenueSharePercentage == nil {
			ve.Add("revenue_share_percentage", nil, fmt.Sprintf("is required for %s leases", l.RentModel))
		} else if l.RevenueSharePercentage.IsNegative() || l.RevenueSharePercentage.GreaterThan(hundred) {
			ve.Add("revenue_share_percentage", l.RevenueSharePercentage.String(), "must be between 0 and 100")
		}
		if l.ApplicableOn != RevenueNetSales && l.ApplicableOn != RevenueGrossSales {
			ve.Add("applicable_on", l.ApplicableOn, "must be one of NET_SALES, GROSS_SALES")
		}
	}
}

func (l *Lease) validateMoney(ve *apperrors.ValidationError) {
	check := func(field string, m *Money) {
		if m == nil {
			return
		}
		if m.IsNegative() {
			ve.Add(field, m.Amount, "must not be negative")
		}
		if m.Currency != l.Currency {
			ve.Add(field, m.Currency, "currency must match the lease currency "+l.Currency)
		}
	}
	check("monthly_rent", l.MonthlyRent)
	check("mgr", l.MinimumGuarantee)
	check("cam_charges", &l.CamCharges)
	check("security_deposit", &l.SecurityDeposit)
}

func (l *Lease) validateEscalations(ve *apperrors.ValidationError) {
	seen := make(map[Date]bool, len(l.Escalations))
	for i, step := range l.Escalations {
		field := fmt.Sprintf("escalations[%d]", i)
		if step.EffectiveFrom.IsZero() {
			ve.Add(field+".effective_from", nil, "is required")
			continue
		}
		if seen[step.EffectiveFrom] {
			ve.Add(field+".effective_from", step.EffectiveFrom.String(), "two escalation steps cannot share a date")
		}
		seen[step.EffectiveFrom] = true
		if !l.LeaseStart.IsZero() && !step.EffectiveFrom.After(l.LeaseStart) {
			ve.Add(field+".effective_from", step.EffectiveFrom.String(), "must be after lease_start")
		}
		if !l.LeaseEnd.IsZero() && step.EffectiveFrom.After(l.LeaseEnd) {
			ve.Add(field+".effective_from", step.EffectiveFrom.String(), "must not be after lease_end")
		}
		if !step.IncreaseType.IsValid() {
			ve.Add(field+".increase_type", step.IncreaseType, "must be one of PERCENTAGE, FIXED_AMOUNT")
		}
		if !step.Value.IsPositive() {
			ve.Add(field+".value", step.Value.String(), "must be positive")
		}
	}
}
