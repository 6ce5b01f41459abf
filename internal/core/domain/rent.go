package domain

import (
	"fmt"

	"github.com/SscSPs/lease_management_app/internal/apperrors"
)

// Period is an inclusive billing period.
type Period struct {
	Start Date `json:"start"`
	End   Date `json:"end"`
}

// HybridPolicy selects how the two components of a hybrid lease combine.
type HybridPolicy string

const (
	HybridSum       HybridPolicy = "SUM"        // fixed rent plus revenue share
	HybridGreaterOf HybridPolicy = "GREATER_OF" // whichever component is larger
)

// IsValid reports whether p is a known policy.
func (p HybridPolicy) IsValid() bool {
	return p == HybridSum || p == HybridGreaterOf
}

// RentCalculator computes rent due for a lease. The zero value uses HybridSum.
type RentCalculator struct {
	Hybrid HybridPolicy
}

// RentDueFor computes rent due with the default calculator.
func RentDueFor(l *Lease, period Period, reportedRevenue *Money) (Money, error) {
	return RentCalculator{}.RentDueFor(l, period, reportedRevenue)
}

// RentDueFor returns the amount due for one billing period, using the terms
// in force on period.Start. reportedRevenue is required for revenue-share
// and hybrid leases and ignored for fixed leases.
func (c RentCalculator) RentDueFor(l *Lease, period Period, reportedRevenue *Money) (Money, error) {
	if period.Start.Before(l.LeaseStart) {
		return Money{}, &apperrors.DateOutOfRangeError{Field: "period_start", Date: period.Start.String(), Min: l.LeaseStart.String()}
	}
	if period.End.Before(period.Start) {
		return Money{}, &apperrors.DateOutOfRangeError{Field: "period_end", Date: period.End.String(), Min: period.Start.String()}
	}
	factor := int64(l.BillingFrequency.Months())
	if factor == 0 {
		return Money{}, &apperrors.InvalidRentModelError{Model: string(l.RentModel), Field: "billing_frequency"}
	}

	terms, err := EffectiveTermsAsOf(l, period.Start)
	if err != nil {
		return Money{}, err
	}

	switch l.RentModel {
	case RentFixed:
		if terms.MonthlyRent == nil {
			return Money{}, &apperrors.InvalidRentModelError{Model: string(l.RentModel), Field: "monthly_rent"}
		}
		return Multiply(*terms.MonthlyRent, factor), nil

	case RentRevenueShare:
		if terms.MinimumGuarantee == nil {
			return Money{}, &apperrors.InvalidRentModelError{Model: string(l.RentModel), Field: "mgr"}
		}
		return revenueComponent(l, terms, factor, reportedRevenue)

	case RentHybrid:
		if terms.MonthlyRent == nil {
			return Money{}, &apperrors.InvalidRentModelError{Model: string(l.RentModel), Field: "monthly_rent"}
		}
		fixed := Multiply(*terms.MonthlyRent, factor)
		share, err := revenueComponent(l, terms, factor, reportedRevenue)
		if err != nil {
			return Money{}, err
		}
		if c.Hybrid == HybridGreaterOf {
			return Max(fixed, share)
		}
		return Add(fixed, share)
	}
	return Money{}, &apperrors.InvalidRentModelError{Model: string(l.RentModel), Field: "rent_model"}
}

// revenueComponent is the revenue share for the period floored at the
// guarantee when the lease carries one.
func revenueComponent(l *Lease, terms Terms, factor int64, revenue *Money) (Money, error) {
	if l.RevenueSharePercentage == nil {
		return Money{}, &apperrors.InvalidRentModelError{Model: string(l.RentModel), Field: "revenue_share_percentage"}
	}
	if revenue == nil {
		return Money{}, apperrors.NewValidationError("reported_revenue", nil,
			fmt.Sprintf("is required for %s leases", l.RentModel))
	}
	if revenue.Currency != l.Currency {
		return Money{}, &apperrors.CurrencyMismatchError{Left: l.Currency, Right: revenue.Currency}
	}
	share := Percentage(*revenue, *l.RevenueSharePercentage)
	if terms.MinimumGuarantee == nil {
		return share, nil
	}
	return Max(share, Multiply(*terms.MinimumGuarantee, factor))
}

// BillingLine is one period of a billing schedule.
type BillingLine struct {
	Period     Period `json:"period"`
	DueDate    Date   `json:"due_date"`
	MinimumDue Money  `json:"minimum_due"`
}

// DueDateFor returns the payment due date in the month of d. A due day past
// the month's length, including EndOfMonthDueDay, falls on the last day.
func DueDateFor(d Date, dueDay int) Date {
	day := dueDay
	if last := DaysIn(d.Year, d.Month); day > last || dueDay == EndOfMonthDueDay {
		day = last
	}
	return Date{Year: d.Year, Month: d.Month, Day: day}
}

// BillingSchedule lists the billing periods from rent commencement to lease
// end. MinimumDue is the amount owed with no reported revenue, so
// revenue-share leases show their guarantee floor.
func (c RentCalculator) BillingSchedule(l *Lease) ([]BillingLine, error) {
	step := l.BillingFrequency.Months()
	if step == 0 {
		return nil, &apperrors.InvalidRentModelError{Model: string(l.RentModel), Field: "billing_frequency"}
	}
	start := l.RentCommencementDate
	if start.IsZero() {
		start = l.LeaseStart
	}
	var noRevenue *Money
	if l.hasRevenueComponent() {
		z := Zero(l.Currency)
		noRevenue = &z
	}

	var lines []BillingLine
	for i := 0; ; i++ {
		from := AddMonths(start, i*step)
		if from.After(l.LeaseEnd) {
			break
		}
		to := AddMonths(start, (i+1)*step).AddDays(-1)
		if to.After(l.LeaseEnd) {
			to = l.LeaseEnd
		}
		p := Period{Start: from, End: to}
		due, err := c.RentDueFor(l, p, noRevenue)
		if err != nil {
			return nil, err
		}
		lines = append(lines, BillingLine{Period: p, DueDate: DueDateFor(from, l.PaymentDueDay), MinimumDue: due})
	}
	return lines, nil
}
