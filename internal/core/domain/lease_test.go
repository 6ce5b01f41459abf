package domain_test

import (
	"testing"

	"github.com/SscSPs/lease_management_app/internal/apperrors"
	"github.com/SscSPs/lease_management_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func violations(t *testing.T, err error) *apperrors.ValidationError {
	t.Helper()
	require.Error(t, err)
	require.ErrorIs(t, err, apperrors.ErrValidation)
	var ve *apperrors.ValidationError
	require.ErrorAs(t, err, &ve)
	return ve
}

func TestLeaseValidate_ValidLeases(t *testing.T) {
	assert.NoError(t, fixedLease().Validate())
	assert.NoError(t, revenueShareLease().Validate())

	sub := fixedLease()
	sub.LeaseType = domain.LeaseSubLease
	sub.SubLeaseAreaSqFt = decPtr("450.5")
	sub.LessorPartyID = "tenant-main"
	assert.NoError(t, sub.Validate())
}

func TestLeaseValidate_SubLeaseRequiresFixedRent(t *testing.T) {
	l := revenueShareLease()
	l.LeaseType = domain.LeaseSubLease
	l.SubLeaseAreaSqFt = decPtr("200")
	l.LessorPartyID = "tenant-main"

	ve := violations(t, l.Validate())
	assert.True(t, ve.HasField("rent_model"))
	assert.Contains(t, ve.Error(), "FIXED")
}

func TestLeaseValidate_ReportsEveryViolation(t *testing.T) {
	l := fixedLease()
	l.LeaseEnd = domain.MustParseDate("2023-06-01")
	l.RentCommencementDate = domain.MustParseDate("2023-12-01")
	l.PaymentDueDay = 7
	l.CamCharges = domain.NewMoney(-1, "INR")
	l.LockinPeriodMonths = -1
	l.TenantID = l.OwnerID

	ve := violations(t, l.Validate())
	for _, field := range []string{"lease_end", "rent_commencement_date", "payment_due_day", "cam_charges", "lockin_period_months", "tenant_id"} {
		assert.True(t, ve.HasField(field), "expected a violation on %s", field)
	}
}

func TestLeaseValidate_PaymentDueDayOptions(t *testing.T) {
	for _, day := range []int{1, 5, 10, 31} {
		l := fixedLease()
		l.PaymentDueDay = day
		assert.NoError(t, l.Validate(), "day %d", day)
	}

	l := fixedLease()
	l.PaymentDueDay = 15
	assert.True(t, violations(t, l.Validate()).HasField("payment_due_day"))
	assert.NoError(t, l.ValidateWith(domain.LeaseRules{DueDays: domain.DueDaysAny}))

	l.PaymentDueDay = 32
	assert.True(t, violations(t, l.ValidateWith(domain.LeaseRules{DueDays: domain.DueDaysAny})).HasField("payment_due_day"))
}

func TestLeaseValidate_RevenueShareFields(t *testing.T) {
	l := revenueShareLease()
	l.MinimumGuarantee = nil
	l.RevenueSharePercentage = decPtr("120")
	l.ApplicableOn = ""

	ve := violations(t, l.Validate())
	assert.True(t, ve.HasField("mgr"))
	assert.True(t, ve.HasField("revenue_share_percentage"))
	assert.True(t, ve.HasField("applicable_on"))
}

func TestLeaseValidate_Currency(t *testing.T) {
	l := fixedLease()
	l.SecurityDeposit = domain.NewMoney(1000, "USD")
	assert.True(t, violations(t, l.Validate()).HasField("security_deposit"))

	l = fixedLease()
	l.Currency = "rupees"
	assert.True(t, violations(t, l.Validate()).HasField("currency"))
}

func TestLeaseValidate_Escalations(t *testing.T) {
	l := fixedLease()
	l.Escalations = []domain.EscalationStep{
		{EffectiveFrom: domain.MustParseDate("2025-01-01"), IncreaseType: domain.IncreasePercentage, Value: dec("5")},
		{EffectiveFrom: domain.MustParseDate("2025-01-01"), IncreaseType: domain.IncreaseFixedAmount, Value: dec("100")},
		{EffectiveFrom: l.LeaseStart, IncreaseType: domain.IncreasePercentage, Value: dec("5")},
		{EffectiveFrom: domain.MustParseDate("2030-01-01"), IncreaseType: "DOUBLE", Value: dec("-1")},
	}

	ve := violations(t, l.Validate())
	assert.True(t, ve.HasField("escalations[1].effective_from"), "duplicate date")
	assert.True(t, ve.HasField("escalations[2].effective_from"), "step on lease start")
	assert.True(t, ve.HasField("escalations[3].effective_from"), "step after lease end")
	assert.True(t, ve.HasField("escalations[3].increase_type"))
	assert.True(t, ve.HasField("escalations[3].value"))
	assert.False(t, ve.HasField("escalations[0].effective_from"))
}

func TestLeaseNormalize_DurationMatchesMonthsBetween(t *testing.T) {
	ranges := [][2]string{
		{"2024-01-01", "2029-01-01"},
		{"2024-01-31", "2024-02-29"},
		{"2024-01-15", "2024-03-14"},
		{"2023-06-30", "2033-06-29"},
	}
	for _, r := range ranges {
		l := fixedLease()
		l.LeaseStart = domain.MustParseDate(r[0])
		l.LeaseEnd = domain.MustParseDate(r[1])
		l.DurationMonths = 999
		l.Normalize()
		assert.Equal(t, domain.MonthsBetween(l.LeaseStart, l.LeaseEnd), l.DurationMonths, "%v", r)
	}
}

func TestLeaseApprovable(t *testing.T) {
	var a domain.Approvable = fixedLease()
	assert.Equal(t, "lease-1", a.EntityID())
	assert.Equal(t, domain.EntityLease, a.EntityType())
	assert.Equal(t, domain.StatusDraft, a.ApprovalState().Status)
}
