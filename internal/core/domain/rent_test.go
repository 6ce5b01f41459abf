package domain_test

import (
	"testing"

	"github.com/SscSPs/lease_management_app/internal/apperrors"
	"github.com/SscSPs/lease_management_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func month(start, end string) domain.Period {
	return domain.Period{Start: domain.MustParseDate(start), End: domain.MustParseDate(end)}
}

func TestRentDueFor_Fixed(t *testing.T) {
	factors := map[domain.BillingFrequency]int64{
		domain.BillingMonthly:    1,
		domain.BillingQuarterly:  3,
		domain.BillingHalfYearly: 6,
		domain.BillingYearly:     12,
	}
	for freq, factor := range factors {
		l := fixedLease()
		l.BillingFrequency = freq
		due, err := domain.RentDueFor(l, month("2024-01-01", "2024-01-31"), nil)
		require.NoError(t, err, freq)
		assert.Equal(t, 100000*factor, due.Amount, freq)
	}
}

func TestRentDueFor_FixedUsesTermsAtPeriodStart(t *testing.T) {
	l := fixedLease()
	l.Escalations = []domain.EscalationStep{
		{EffectiveFrom: domain.MustParseDate("2025-01-01"), IncreaseType: domain.IncreasePercentage, Value: dec("5")},
	}
	due, err := domain.RentDueFor(l, month("2024-12-01", "2024-12-31"), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(100000), due.Amount)

	due, err = domain.RentDueFor(l, month("2025-01-01", "2025-01-31"), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(105000), due.Amount)
}

func TestRentDueFor_RevenueShare(t *testing.T) {
	l := revenueShareLease()

	// Share above the guarantee.
	due, err := domain.RentDueFor(l, month("2024-03-01", "2024-03-31"), inr(1000000))
	require.NoError(t, err)
	assert.Equal(t, int64(100000), due.Amount)

	// Guarantee acts as a floor.
	due, err = domain.RentDueFor(l, month("2024-03-01", "2024-03-31"), inr(200000))
	require.NoError(t, err)
	assert.Equal(t, int64(50000), due.Amount)

	// Floor scales with the billing period.
	l.BillingFrequency = domain.BillingQuarterly
	due, err = domain.RentDueFor(l, month("2024-01-01", "2024-03-31"), inr(1000000))
	require.NoError(t, err)
	assert.Equal(t, int64(150000), due.Amount)
}

func TestRentDueFor_RevenueShareErrors(t *testing.T) {
	l := revenueShareLease()

	_, err := domain.RentDueFor(l, month("2024-03-01", "2024-03-31"), nil)
	var ve *apperrors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.True(t, ve.HasField("reported_revenue"))

	usd := domain.NewMoney(1000, "USD")
	_, err = domain.RentDueFor(l, month("2024-03-01", "2024-03-31"), &usd)
	assert.ErrorIs(t, err, apperrors.ErrCurrencyMismatch)

	l.MinimumGuarantee = nil
	_, err = domain.RentDueFor(l, month("2024-03-01", "2024-03-31"), inr(10))
	var rm *apperrors.InvalidRentModelError
	require.ErrorAs(t, err, &rm)
	assert.Equal(t, "mgr", rm.Field)
}

func TestRentDueFor_Hybrid(t *testing.T) {
	l := fixedLease()
	l.RentModel = domain.RentHybrid
	l.RevenueSharePercentage = decPtr("10")
	l.ApplicableOn = domain.RevenueGrossSales
	period := month("2024-03-01", "2024-03-31")

	due, err := domain.RentDueFor(l, period, inr(300000))
	require.NoError(t, err)
	assert.Equal(t, int64(130000), due.Amount, "sum of fixed and share")

	l.MinimumGuarantee = inr(50000)
	due, err = domain.RentDueFor(l, period, inr(300000))
	require.NoError(t, err)
	assert.Equal(t, int64(150000), due.Amount, "share floored at the guarantee")

	greater := domain.RentCalculator{Hybrid: domain.HybridGreaterOf}
	due, err = greater.RentDueFor(l, period, inr(3000000))
	require.NoError(t, err)
	assert.Equal(t, int64(300000), due.Amount)

	due, err = greater.RentDueFor(l, period, inr(300000))
	require.NoError(t, err)
	assert.Equal(t, int64(100000), due.Amount)
}

func TestRentDueFor_MissingFixedRent(t *testing.T) {
	l := fixedLease()
	l.MonthlyRent = nil
	_, err := domain.RentDueFor(l, month("2024-01-01", "2024-01-31"), nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidRentModel)
}

func TestRentDueFor_PeriodOutOfRange(t *testing.T) {
	l := fixedLease()
	_, err := domain.RentDueFor(l, month("2023-12-01", "2023-12-31"), nil)
	assert.ErrorIs(t, err, apperrors.ErrDateOutOfRange)

	_, err = domain.RentDueFor(l, month("2024-02-01", "2024-01-31"), nil)
	assert.ErrorIs(t, err, apperrors.ErrDateOutOfRange)
}

func TestBillingSchedule_Quarterly(t *testing.T) {
	l := fixedLease()
	l.LeaseEnd = domain.MustParseDate("2024-12-31")
	l.BillingFrequency = domain.BillingQuarterly
	l.PaymentDueDay = domain.EndOfMonthDueDay
	l.Normalize()

	lines, err := domain.RentCalculator{}.BillingSchedule(l)
	require.NoError(t, err)
	require.Len(t, lines, 4)

	assert.Equal(t, "2024-01-01", lines[0].Period.Start.String())
	assert.Equal(t, "2024-03-31", lines[0].Period.End.String())
	assert.Equal(t, "2024-01-31", lines[0].DueDate.String())
	assert.Equal(t, int64(300000), lines[0].MinimumDue.Amount)

	assert.Equal(t, "2024-04-01", lines[1].Period.Start.String())
	assert.Equal(t, "2024-04-30", lines[1].DueDate.String())
	assert.Equal(t, "2024-12-31", lines[3].Period.End.String())
}

func TestBillingSchedule_RevenueShareShowsFloor(t *testing.T) {
	l := revenueShareLease()
	l.LeaseEnd = domain.MustParseDate("2024-03-15")
	l.Normalize()

	lines, err := domain.RentCalculator{}.BillingSchedule(l)
	require.NoError(t, err)
	require.Len(t, lines, 3)
	assert.Equal(t, "2024-03-15", lines[2].Period.End.String(), "last period is cut at lease end")
	for _, line := range lines {
		assert.Equal(t, int64(50000), line.MinimumDue.Amount)
		assert.Equal(t, 5, line.DueDate.Day)
	}
}

func TestDueDateFor(t *testing.T) {
	assert.Equal(t, "2024-02-29", domain.DueDateFor(domain.MustParseDate("2024-02-01"), 31).String())
	assert.Equal(t, "2023-02-28", domain.DueDateFor(domain.MustParseDate("2023-02-10"), 30).String())
	assert.Equal(t, "2024-04-10", domain.DueDateFor(domain.MustParseDate("2024-04-01"), 10).String())
}
