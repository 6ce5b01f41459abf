package services

import (
	"context"

	"github.com/SscSPs/lease_management_app/internal/core/domain"
	"github.com/SscSPs/lease_management_app/internal/dto"
)

// ProjectSvcFacade manages projects.
type ProjectSvcFacade interface {
	CreateProject(ctx context.Context, req dto.ProjectRequest, actor domain.Actor) (*domain.Project, error)
	UpdateProject(ctx context.Context, projectID string, req dto.ProjectRequest, actor domain.Actor) (*domain.Project, error)
	GetProjectByID(ctx context.Context, projectID string, actor domain.Actor) (*domain.Project, error)
	ListProjects(ctx context.Context, params dto.ListMasterDataParams, actor domain.Actor) ([]domain.Project, error)
	WorkflowSvc[domain.Project]
}

// UnitSvcFacade manages units. A unit's project must exist.
type UnitSvcFacade interface {
	CreateUnit(ctx context.Context, req dto.UnitRequest, actor domain.Actor) (*domain.Unit, error)
	UpdateUnit(ctx context.Context, unitID string, req dto.UnitRequest, actor domain.Actor) (*domain.Unit, error)
	GetUnitByID(ctx context.Context, unitID string, actor domain.Actor) (*domain.Unit, error)
	ListUnits(ctx context.Context, params dto.ListMasterDataParams, actor domain.Actor) ([]domain.Unit, error)
	WorkflowSvc[domain.Unit]
}

// PartySvcFacade manages owners, tenants and sub-tenants.
type PartySvcFacade interface {
	CreateParty(ctx context.Context, req dto.PartyRequest, actor domain.Actor) (*domain.Party, error)
	UpdateParty(ctx context.Context, partyID string, req dto.PartyRequest, actor domain.Actor) (*domain.Party, error)
	GetPartyByID(ctx context.Context, partyID string, actor domain.Actor) (*domain.Party, error)
	ListParties(ctx context.Context, params dto.ListMasterDataParams, actor domain.Actor) ([]domain.Party, error)
	WorkflowSvc[domain.Party]
}
