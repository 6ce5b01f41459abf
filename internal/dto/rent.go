package dto

import "github.com/SscSPs/lease_management_app/internal/core/domain"

// LeaseTermsResponse reports the rent figures in force on a date.
type LeaseTermsResponse struct {
	LeaseID     string      `json:"lease_id"`
	AsOf        domain.Date `json:"as_of"`
	Currency    string      `json:"currency"`
	MonthlyRent *int64      `json:"monthly_rent,omitempty"`
	MGR         *int64      `json:"mgr,omitempty"`
}

// ToLeaseTermsResponse converts effective terms.
func ToLeaseTermsResponse(l *domain.Lease, asOf domain.Date, terms domain.Terms) LeaseTermsResponse {
	return LeaseTermsResponse{
		LeaseID:     l.LeaseID,
		AsOf:        asOf,
		Currency:    l.Currency,
		MonthlyRent: amountPtr(terms.MonthlyRent),
		MGR:         amountPtr(terms.MinimumGuarantee),
	}
}

// RentDueRequest asks for the rent of one billing period. ReportedRevenue is
// required for revenue-share and hybrid leases; its currency defaults to the
// lease currency.
type RentDueRequest struct {
	PeriodStart             domain.Date `json:"period_start"`
	PeriodEnd               domain.Date `json:"period_end"`
	ReportedRevenue         *int64      `json:"reported_revenue,omitempty" binding:"omitempty,gte=0"`
	ReportedRevenueCurrency string      `json:"reported_revenue_currency,omitempty" binding:"omitempty,len=3,uppercase"`
}

// RentDueResponse is the computed rent of a period.
type RentDueResponse struct {
	LeaseID     string      `json:"lease_id"`
	RentModel   string      `json:"rent_model"`
	PeriodStart domain.Date `json:"period_start"`
	PeriodEnd   domain.Date `json:"period_end"`
	AmountDue   int64       `json:"amount_due"`
	Currency    string      `json:"currency"`
	Display     string      `json:"display"`
}

// BillingLineResponse is one row of a billing schedule.
type BillingLineResponse struct {
	PeriodStart domain.Date `json:"period_start"`
	PeriodEnd   domain.Date `json:"period_end"`
	DueDate     domain.Date `json:"due_date"`
	MinimumDue  int64       `json:"minimum_due"`
}

// BillingScheduleResponse lists the billing periods of a lease.
type BillingScheduleResponse struct {
	LeaseID          string                `json:"lease_id"`
	Currency         string                `json:"currency"`
	BillingFrequency string                `json:"billing_frequency"`
	PaymentDueDay    int                   `json:"payment_due_day"`
	Lines            []BillingLineResponse `json:"lines"`
}

// ToBillingScheduleResponse converts a computed schedule.
func ToBillingScheduleResponse(l *domain.Lease, lines []domain.BillingLine) BillingScheduleResponse {
	out := make([]BillingLineResponse, len(lines))
	for i, line := range lines {
		out[i] = BillingLineResponse{
			PeriodStart: line.Period.Start,
			PeriodEnd:   line.Period.End,
			DueDate:     line.DueDate,
			MinimumDue:  line.MinimumDue.Amount,
		}
	}
	return BillingScheduleResponse{
		LeaseID:          l.LeaseID,
		Currency:         l.Currency,
		BillingFrequency: string(l.BillingFrequency),
		PaymentDueDay:    l.PaymentDueDay,
		Lines:            out,
	}
}
