package repositories

import (
	"context"

	"github.com/SscSPs/lease_management_app/internal/core/domain"
)

// MasterDataFilter narrows listings of projects, units and parties.
type MasterDataFilter struct {
	Status    domain.ApprovalStatus
	ProjectID string           // units only
	Role      domain.PartyRole // parties only
	Limit     int
	Offset    int
}

// ProjectRepositoryFacade defines persistence for projects. UpdateProject is
// compare-and-swap on the version counter.
type ProjectRepositoryFacade interface {
	FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error)
	ListProjects(ctx context.Context, filter MasterDataFilter) ([]domain.Project, error)
	SaveProject(ctx context.Context, project domain.Project) error
	UpdateProject(ctx context.Context, project domain.Project, expectedVersion int64) error
}

// UnitRepositoryFacade defines persistence for units.
type UnitRepositoryFacade interface {
	FindUnitByID(ctx context.Context, unitID string) (*domain.Unit, error)
	ListUnits(ctx context.Context, filter MasterDataFilter) ([]domain.Unit, error)
	SaveUnit(ctx context.Context, unit domain.Unit) error
	UpdateUnit(ctx context.Context, unit domain.Unit, expectedVersion int64) error
}

// PartyRepositoryFacade defines persistence for owners, tenants and sub-tenants.
type PartyRepositoryFacade interface {
	FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error)
	ListParties(ctx context.Context, filter MasterDataFilter) ([]domain.Party, error)
	SaveParty(ctx context.Context, party domain.Party) error
	UpdateParty(ctx context.Context, party domain.Party, expectedVersion int64) error
}
