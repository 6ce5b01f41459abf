package services

import (
	"context"

	"github.com/SscSPs/lease_management_app/internal/core/domain"
	"github.com/SscSPs/lease_management_app/internal/dto"
)

// LeaseReaderSvc defines read operations for leases.
type LeaseReaderSvc interface {
	// GetLeaseByID retrieves a lease with its escalation schedule.
	GetLeaseByID(ctx context.Context, leaseID string, actor domain.Actor) (*domain.Lease, error)

	// ListLeases returns one page of leases, newest first.
	ListLeases(ctx context.Context, params dto.ListLeasesParams, actor domain.Actor) (*dto.ListLeasesResponse, error)
}

// LeaseWriterSvc defines write operations for leases.
type LeaseWriterSvc interface {
	// CreateLease stores a new Draft lease.
	CreateLease(ctx context.Context, req dto.CreateLeaseRequest, actor domain.Actor) (*domain.Lease, error)

	// UpdateLease replaces the terms of a Draft or Rejected lease. Updating an
	// Approved lease creates a new pending revision instead.
	UpdateLease(ctx context.Context, leaseID string, req dto.UpdateLeaseRequest, actor domain.Actor) (*domain.Lease, error)
}

// RentSvc defines rent computations over a stored lease.
type RentSvc interface {
	// GetEffectiveTerms returns the rent figures in force on asOf.
	GetEffectiveTerms(ctx context.Context, leaseID string, asOf domain.Date, actor domain.Actor) (*dto.LeaseTermsResponse, error)

	// CalculateRentDue returns the rent of one billing period.
	CalculateRentDue(ctx context.Context, leaseID string, req dto.RentDueRequest, actor domain.Actor) (*dto.RentDueResponse, error)

	// GetBillingSchedule lists every billing period of the lease.
	GetBillingSchedule(ctx context.Context, leaseID string, actor domain.Actor) (*dto.BillingScheduleResponse, error)
}

// LeaseSvcFacade combines all lease-related service interfaces
type LeaseSvcFacade interface {
	LeaseReaderSvc
	LeaseWriterSvc
	RentSvc
	WorkflowSvc[domain.Lease]
}
