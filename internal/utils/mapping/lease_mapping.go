package mapping

import (
	"github.com/SscSPs/lease_management_app/internal/core/domain"
	"github.com/SscSPs/lease_management_app/internal/models"
	"github.com/shopspring/decimal"
)

func amountPtr(m *domain.Money) *int64 {
	if m == nil {
		return nil
	}
	a := m.Amount
	return &a
}

func moneyPtr(amount *int64, currency string) *domain.Money {
	if amount == nil {
		return nil
	}
	m := domain.NewMoney(*amount, currency)
	return &m
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}

func decimalPtr(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}

// ToModelLease converts a domain Lease to its row and escalation rows.
func ToModelLease(d domain.Lease) (models.Lease, []models.LeaseEscalation) {
	m := models.Lease{
		LeaseID:                d.LeaseID,
		LeaseType:              string(d.LeaseType),
		RentModel:              string(d.RentModel),
		ProjectID:              d.ProjectID,
		UnitID:                 d.UnitID,
		TenantID:               d.TenantID,
		OwnerID:                d.OwnerID,
		LessorPartyID:          StringPtr(d.LessorPartyID),
		SubLeaseAreaSqFt:       nullDecimal(d.SubLeaseAreaSqFt),
		CurrencyCode:           d.Currency,
		LeaseStart:             DateToTime(d.LeaseStart),
		LeaseEnd:               DateToTime(d.LeaseEnd),
		RentCommencementDate:   DateToTime(d.RentCommencementDate),
		DurationMonths:         d.DurationMonths,
		LockinPeriodMonths:     d.LockinPeriodMonths,
		NoticePeriodMonths:     d.NoticePeriodMonths,
		MonthlyRent:            amountPtr(d.MonthlyRent),
		MinimumGuarantee:       amountPtr(d.MinimumGuarantee),
		RevenueSharePercentage: nullDecimal(d.RevenueSharePercentage),
		ApplicableOn:           StringPtr(string(d.ApplicableOn)),
		CamCharges:             d.CamCharges.Amount,
		SecurityDeposit:        d.SecurityDeposit.Amount,
		DepositType:            string(d.DepositType),
		BillingFrequency:       string(d.BillingFrequency),
		PaymentDueDay:          d.PaymentDueDay,
		Revision:               d.Revision,
		PreviousRevisionID:     StringPtr(d.PreviousRevisionID),
		SupersededByID:         StringPtr(d.SupersededByID),
		ApprovalColumns:        ToModelApproval(d.Approval),
		AuditFields:            ToModelAuditFields(d.AuditFields),
	}
	steps := make([]models.LeaseEscalation, len(d.Escalations))
	for i, s := range d.Escalations {
		steps[i] = models.LeaseEscalation{
			LeaseID:       d.LeaseID,
			Seq:           i,
			EffectiveFrom: DateToTime(s.EffectiveFrom),
			IncreaseType:  string(s.IncreaseType),
			Value:         s.Value,
		}
	}
	return m, steps
}

// ToDomainLease converts a lease row and its escalation rows, ordered by
// seq, back to the aggregate.
func ToDomainLease(m models.Lease, steps []models.LeaseEscalation) domain.Lease {
	escalations := make([]domain.EscalationStep, len(steps))
	for i, s := range steps {
		escalations[i] = domain.EscalationStep{
			EffectiveFrom: domain.DateOf(s.EffectiveFrom),
			IncreaseType:  domain.IncreaseType(s.IncreaseType),
			Value:         s.Value,
		}
	}
	return domain.Lease{
		LeaseID:                m.LeaseID,
		LeaseType:              domain.LeaseType(m.LeaseType),
		RentModel:              domain.RentModel(m.RentModel),
		ProjectID:              m.ProjectID,
		UnitID:                 m.UnitID,
		TenantID:               m.TenantID,
		OwnerID:                m.OwnerID,
		LessorPartyID:          StringValue(m.LessorPartyID),
		SubLeaseAreaSqFt:       decimalPtr(m.SubLeaseAreaSqFt),
		Currency:               m.CurrencyCode,
		LeaseStart:             domain.DateOf(m.LeaseStart),
		LeaseEnd:               domain.DateOf(m.LeaseEnd),
		RentCommencementDate:   domain.DateOf(m.RentCommencementDate),
		DurationMonths:         m.DurationMonths,
		LockinPeriodMonths:     m.LockinPeriodMonths,
		NoticePeriodMonths:     m.NoticePeriodMonths,
		MonthlyRent:            moneyPtr(m.MonthlyRent, m.CurrencyCode),
		MinimumGuarantee:       moneyPtr(m.MinimumGuarantee, m.CurrencyCode),
		RevenueSharePercentage: decimalPtr(m.RevenueSharePercentage),
		ApplicableOn:           domain.RevenueBasis(StringValue(m.ApplicableOn)),
		CamCharges:             domain.NewMoney(m.CamCharges, m.CurrencyCode),
		SecurityDeposit:        domain.NewMoney(m.SecurityDeposit, m.CurrencyCode),
		DepositType:            domain.DepositType(m.DepositType),
		BillingFrequency:       domain.BillingFrequency(m.BillingFrequency),
		PaymentDueDay:          m.PaymentDueDay,
		Escalations:            escalations,
		Revision:               m.Revision,
		PreviousRevisionID:     StringValue(m.PreviousRevisionID),
		SupersededByID:         StringValue(m.SupersededByID),
		Approval:               ToDomainApproval(m.ApprovalColumns),
		AuditFields:            ToDomainAuditFields(m.AuditFields),
	}
}
