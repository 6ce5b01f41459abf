package repositories

import (
	"context"

	"github.com/SscSPs/lease_management_app/internal/core/domain"
)

// OwnershipReader defines read operations for unit ownership.
type OwnershipReader interface {
	// FindActiveOwnership returns the unit's ACTIVE record or apperrors.ErrNotFound.
	FindActiveOwnership(ctx context.Context, unitID string) (*domain.OwnershipRecord, error)

	// ListOwnershipByUnit returns the unit's history, most recent first.
	ListOwnershipByUnit(ctx context.Context, unitID string) ([]domain.OwnershipRecord, error)
}

// OwnershipWriter defines write operations for unit ownership.
type OwnershipWriter interface {
	// SaveOwnership inserts a record. A second ACTIVE record for the same
	// unit fails with apperrors.ErrConflict.
	SaveOwnership(ctx context.Context, record domain.OwnershipRecord) error

	// EndOwnership stores an ended record, compare-and-swap on version.
	EndOwnership(ctx context.Context, record domain.OwnershipRecord, expectedVersion int64) error
}

// OwnershipRepositoryFacade combines all ownership repository interfaces
type OwnershipRepositoryFacade interface {
	OwnershipReader
	OwnershipWriter
}
