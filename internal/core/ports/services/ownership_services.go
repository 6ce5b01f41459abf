package services

import (
	"context"

	"github.com/SscSPs/lease_management_app/internal/core/domain"
	"github.com/SscSPs/lease_management_app/internal/dto"
)

// OwnershipSvcFacade records which party owns a unit over time.
type OwnershipSvcFacade interface {
	// AssignOwnership starts an active ownership. The unit must not have one.
	AssignOwnership(ctx context.Context, req dto.AssignOwnershipRequest, actor domain.Actor) (*domain.OwnershipRecord, error)

	// RemoveOwnership ends the unit's active ownership by the given party.
	RemoveOwnership(ctx context.Context, req dto.RemoveOwnershipRequest, actor domain.Actor) (*domain.OwnershipRecord, error)

	// ListOwnershipHistory returns the unit's records, most recent first.
	ListOwnershipHistory(ctx context.Context, unitID string, actor domain.Actor) ([]domain.OwnershipRecord, error)
}
