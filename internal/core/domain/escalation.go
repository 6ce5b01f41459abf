package domain

import (
	"sort"

	"github.com/SscSPs/lease_management_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// IncreaseType says how an escalation step changes rent.
type IncreaseType string

const (
	IncreasePercentage  IncreaseType = "PERCENTAGE"
	IncreaseFixedAmount IncreaseType = "FIXED_AMOUNT" // value is in minor units of the lease currency
)

// IsValid reports whether t is a known increase type.
func (t IncreaseType) IsValid() bool {
	return t == IncreasePercentage || t == IncreaseFixedAmount
}

// EscalationStep is a scheduled rent adjustment. A lease exclusively owns its steps.
type EscalationStep struct {
	EffectiveFrom Date            `json:"effectiveFrom"`
	IncreaseType  IncreaseType    `json:"increaseType"`
	Value         decimal.Decimal `json:"value"`
}

// apply returns m adjusted by the step, rounded to whole minor units.
func (s EscalationStep) apply(m Money) Money {
	switch s.IncreaseType {
	case IncreasePercentage:
		return Money{Amount: m.Amount + Percentage(m, s.Value).Amount, Currency: m.Currency}
	case IncreaseFixedAmount:
		return Money{Amount: m.Amount + s.Value.Round(0).IntPart(), Currency: m.Currency}
	}
	return m
}

// Terms are the rent figures in force on a given date.
type Terms struct {
	MonthlyRent      *Money `json:"monthlyRent,omitempty"`
	MinimumGuarantee *Money `json:"minimumGuarantee,omitempty"`
}

// BaseTerms returns the lease's terms before any escalation.
func BaseTerms(l *Lease) Terms {
	return Terms{
		MonthlyRent:      copyMoney(l.MonthlyRent),
		MinimumGuarantee: copyMoney(l.MinimumGuarantee),
	}
}

func copyMoney(m *Money) *Money {
	if m == nil {
		return nil
	}
	c := *m
	return &c
}

// SortedSteps returns the steps in chronological order. Steps sharing a date
// keep their insertion order.
func SortedSteps(steps []EscalationStep) []EscalationStep {
	out := make([]EscalationStep, len(steps))
	copy(out, steps)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].EffectiveFrom.Before(out[j].EffectiveFrom)
	})
	return out
}

// EffectiveTermsAsOf replays every step effective on or before date, in
// chronological order, over the base terms. Each step's base is the value
// left by the previous step. Escalations apply to every rent component the
// lease carries.
func EffectiveTermsAsOf(l *Lease, date Date) (Terms, error) {
	if date.Before(l.LeaseStart) {
		return Terms{}, &apperrors.DateOutOfRangeError{Field: "as_of", Date: date.String(), Min: l.LeaseStart.String()}
	}
	terms := BaseTerms(l)
	for _, step := range SortedSteps(l.Escalations) {
		if step.EffectiveFrom.After(date) {
			break
		}
		if terms.MonthlyRent != nil {
			v := step.apply(*terms.MonthlyRent)
			terms.MonthlyRent = &v
		}
		if terms.MinimumGuarantee != nil {
			v := step.apply(*terms.MinimumGuarantee)
			terms.MinimumGuarantee = &v
		}
	}
	return terms, nil
}
