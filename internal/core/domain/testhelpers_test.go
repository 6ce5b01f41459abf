package domain_test

import (
	"github.com/SscSPs/lease_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

func inr(amount int64) *domain.Money {
	m := domain.NewMoney(amount, "INR")
	return &m
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func fixedLease() *domain.Lease {
	l := &domain.Lease{
		LeaseID:              "lease-1",
		LeaseType:            domain.LeaseDirect,
		RentModel:            domain.RentFixed,
		ProjectID:            "project-1",
		UnitID:               "unit-1",
		TenantID:             "tenant-1",
		OwnerID:              "owner-1",
		Currency:             "INR",
		LeaseStart:           domain.MustParseDate("2024-01-01"),
		LeaseEnd:             domain.MustParseDate("2028-12-31"),
		RentCommencementDate: domain.MustParseDate("2024-01-01"),
		LockinPeriodMonths:   12,
		NoticePeriodMonths:   3,
		MonthlyRent:          inr(100000),
		CamCharges:           domain.NewMoney(5000, "INR"),
		SecurityDeposit:      domain.NewMoney(600000, "INR"),
		DepositType:          domain.DepositCash,
		BillingFrequency:     domain.BillingMonthly,
		PaymentDueDay:        5,
		Revision:             1,
		Approval:             domain.NewDraftApproval(),
	}
	l.Normalize()
	return l
}

func revenueShareLease() *domain.Lease {
	l := fixedLease()
	l.RentModel = domain.RentRevenueShare
	l.MonthlyRent = nil
	l.MinimumGuarantee = inr(50000)
	l.RevenueSharePercentage = decPtr("10")
	l.ApplicableOn = domain.RevenueNetSales
	return l
}
