package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/lease_management_app/internal/core/domain"
)

// LeaseFilter narrows a lease listing. Empty fields do not filter.
// Results are ordered by creation time, newest first; AfterCreatedAt and
// AfterID form the keyset cursor of the previous page.
type LeaseFilter struct {
	Status         domain.ApprovalStatus
	ProjectID      string
	UnitID         string
	Limit          int
	AfterCreatedAt *time.Time
	AfterID        string
}

// LeaseReader defines read operations for leases.
type LeaseReader interface {
	// FindLeaseByID loads a lease with its escalation steps.
	FindLeaseByID(ctx context.Context, leaseID string) (*domain.Lease, error)

	// ListLeases returns leases matching the filter, escalations included.
	ListLeases(ctx context.Context, filter LeaseFilter) ([]domain.Lease, error)
}

// LeaseWriter defines write operations for leases. Updates are
// compare-and-swap on the version counter and fail with
// apperrors.ErrStaleVersion when the stored version differs.
type LeaseWriter interface {
	// SaveLease inserts a new lease and its escalation steps atomically.
	SaveLease(ctx context.Context, lease domain.Lease) error

	// UpdateLease replaces a lease's terms, approval state and escalation steps.
	UpdateLease(ctx context.Context, lease domain.Lease, expectedVersion int64) error

	// UpdateLeaseApproval writes the approval state only. Approving a
	// revision also marks the revision it replaces as superseded.
	UpdateLeaseApproval(ctx context.Context, lease domain.Lease, expectedVersion int64) error
}

// LeaseRepositoryFacade combines all lease-related repository interfaces
type LeaseRepositoryFacade interface {
	LeaseReader
	LeaseWriter
}

// LeaseRepositoryWithTx extends LeaseRepositoryFacade with transaction capabilities
type LeaseRepositoryWithTx interface {
	LeaseRepositoryFacade
	TransactionManager
}
