package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/lease_management_app/internal/apperrors"
	"github.com/SscSPs/lease_management_app/internal/core/domain"
	"github.com/SscSPs/lease_management_app/internal/core/ports"
	portsrepo "github.com/SscSPs/lease_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/lease_management_app/internal/core/ports/services"
	"github.com/SscSPs/lease_management_app/internal/dto"
	"github.com/google/uuid"
)

// WorkflowDeps are the collaborators shared by every approvable service.
// Nil members are skipped.
type WorkflowDeps struct {
	Publisher ports.ApprovalEventPublisher
	Metrics   ports.WorkflowMetrics
}

func toMasterDataFilter(params dto.ListMasterDataParams) portsrepo.MasterDataFilter {
	return portsrepo.MasterDataFilter{
		Status:    domain.ApprovalStatus(params.Status),
		ProjectID: params.ProjectID,
		Role:      domain.PartyRole(params.Role),
		Limit:     params.Limit,
		Offset:    params.Offset,
	}
}

// --- Projects ---

type projectService struct {
	*approvalWorkflow[domain.Project, *domain.Project]
	repo portsrepo.ProjectRepositoryFacade
}

// NewProjectService creates the project service.
func NewProjectService(repo portsrepo.ProjectRepositoryFacade, deps WorkflowDeps) portssvc.ProjectSvcFacade {
	return &projectService{
		repo: repo,
		approvalWorkflow: &approvalWorkflow[domain.Project, *domain.Project]{
			entity:      domain.EntityProject,
			load:        repo.FindProjectByID,
			saveState:   func(ctx context.Context, p *domain.Project, v int64) error { return repo.UpdateProject(ctx, *p, v) },
			saveContent: func(ctx context.Context, p *domain.Project, v int64) error { return repo.UpdateProject(ctx, *p, v) },
			publisher:   deps.Publisher,
			metrics:     deps.Metrics,
		},
	}
}

func (s *projectService) CreateProject(ctx context.Context, req dto.ProjectRequest, actor domain.Actor) (*domain.Project, error) {
	if err := s.AuthorizeUser(ctx, actor, domain.CapabilityEdit); err != nil {
		return nil, err
	}
	project := domain.Project{
		ProjectID:   uuid.NewString(),
		Approval:    domain.NewDraftApproval(),
		AuditFields: domain.NewAuditFields(actor.UserID, s.now()),
	}
	req.ApplyTo(&project)
	if err := project.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.SaveProject(ctx, project); err != nil {
		s.LogError(ctx, err, "Failed to save project", slog.String("code", project.Code))
		return nil, err
	}
	s.LogInfo(ctx, "Project created successfully", slog.String("project_id", project.ProjectID))
	return &project, nil
}

func (s *projectService) UpdateProject(ctx context.Context, projectID string, req dto.ProjectRequest, actor domain.Actor) (*domain.Project, error) {
	return s.Edit(ctx, projectID, req.Version, actor, func(p *domain.Project) error {
		req.ApplyTo(p)
		return p.Validate()
	})
}

func (s *projectService) GetProjectByID(ctx context.Context, projectID string, actor domain.Actor) (*domain.Project, error) {
	if err := s.AuthorizeUser(ctx, actor, domain.CapabilityRead); err != nil {
		return nil, err
	}
	return s.repo.FindProjectByID(ctx, projectID)
}

func (s *projectService) ListProjects(ctx context.Context, params dto.ListMasterDataParams, actor domain.Actor) ([]domain.Project, error) {
	if err := s.AuthorizeUser(ctx, actor, domain.CapabilityRead); err != nil {
		return nil, err
	}
	return s.repo.ListProjects(ctx, toMasterDataFilter(params))
}

// --- Units ---

type unitService struct {
	*approvalWorkflow[domain.Unit, *domain.Unit]
	repo        portsrepo.UnitRepositoryFacade
	projectRepo portsrepo.ProjectRepositoryFacade
}

// NewUnitService creates the unit service. A unit's project must exist.
func NewUnitService(repo portsrepo.UnitRepositoryFacade, projectRepo portsrepo.ProjectRepositoryFacade, deps WorkflowDeps) portssvc.UnitSvcFacade {
	svc := &unitService{repo: repo, projectRepo: projectRepo}
	svc.approvalWorkflow = &approvalWorkflow[domain.Unit, *domain.Unit]{
		entity:      domain.EntityUnit,
		load:        repo.FindUnitByID,
		saveState:   func(ctx context.Context, u *domain.Unit, v int64) error { return repo.UpdateUnit(ctx, *u, v) },
		saveContent: func(ctx context.Context, u *domain.Unit, v int64) error { return repo.UpdateUnit(ctx, *u, v) },
		validate:    svc.validateUnit,
		publisher:   deps.Publisher,
		metrics:     deps.Metrics,
	}
	return svc
}

func (s *unitService) validateUnit(ctx context.Context, u *domain.Unit) error {
	ve := &apperrors.ValidationError{}
	if err := u.Validate(); err != nil && !errors.As(err, &ve) {
		return err
	}
	if u.ProjectID != "" && s.projectRepo != nil {
		if _, err := s.projectRepo.FindProjectByID(ctx, u.ProjectID); err != nil {
			if !errors.Is(err, apperrors.ErrNotFound) {
				return err
			}
			ve.Add("project_id", u.ProjectID, "does not exist")
		}
	}
	return ve.OrNil()
}

func (s *unitService) CreateUnit(ctx context.Context, req dto.UnitRequest, actor domain.Actor) (*domain.Unit, error) {
	if err := s.AuthorizeUser(ctx, actor, domain.CapabilityEdit); err != nil {
		return nil, err
	}
	unit := domain.Unit{
		UnitID:      uuid.NewString(),
		Approval:    domain.NewDraftApproval(),
		AuditFields: domain.NewAuditFields(actor.UserID, s.now()),
	}
	req.ApplyTo(&unit)
	if err := s.validateUnit(ctx, &unit); err != nil {
		return nil, err
	}
	if err := s.repo.SaveUnit(ctx, unit); err != nil {
		s.LogError(ctx, err, "Failed to save unit", slog.String("unit_number", unit.UnitNumber))
		return nil, err
	}
	s.LogInfo(ctx, "Unit created successfully",
		slog.String("unit_id", unit.UnitID),
		slog.String("project_id", unit.ProjectID))
	return &unit, nil
}

func (s *unitService) UpdateUnit(ctx context.Context, unitID string, req dto.UnitRequest, actor domain.Actor) (*domain.Unit, error) {
	return s.Edit(ctx, unitID, req.Version, actor, func(u *domain.Unit) error {
		req.ApplyTo(u)
		return s.validateUnit(ctx, u)
	})
}

func (s *unitService) GetUnitByID(ctx context.Context, unitID string, actor domain.Actor) (*domain.Unit, error) {
	if err := s.AuthorizeUser(ctx, actor, domain.CapabilityRead); err != nil {
		return nil, err
	}
	return s.repo.FindUnitByID(ctx, unitID)
}

func (s *unitService) ListUnits(ctx context.Context, params dto.ListMasterDataParams, actor domain.Actor) ([]domain.Unit, error) {
	if err := s.AuthorizeUser(ctx, actor, domain.CapabilityRead); err != nil {
		return nil, err
	}
	return s.repo.ListUnits(ctx, toMasterDataFilter(params))
}

// --- Parties ---

type partyService struct {
	*approvalWorkflow[domain.Party, *domain.Party]
	repo portsrepo.PartyRepositoryFacade
}

// NewPartyService creates the party service.
func NewPartyService(repo portsrepo.PartyRepositoryFacade, deps WorkflowDeps) portssvc.PartySvcFacade {
	return &partyService{
		repo: repo,
		approvalWorkflow: &approvalWorkflow[domain.Party, *domain.Party]{
			entity:      domain.EntityParty,
			load:        repo.FindPartyByID,
			saveState:   func(ctx context.Context, p *domain.Party, v int64) error { return repo.UpdateParty(ctx, *p, v) },
			saveContent: func(ctx context.Context, p *domain.Party, v int64) error { return repo.UpdateParty(ctx, *p, v) },
			publisher:   deps.Publisher,
			metrics:     deps.Metrics,
		},
	}
}

func (s *partyService) CreateParty(ctx context.Context, req dto.PartyRequest, actor domain.Actor) (*domain.Party, error) {
	if err := s.AuthorizeUser(ctx, actor, domain.CapabilityEdit); err != nil {
		return nil, err
	}
	party := domain.Party{
		PartyID:     uuid.NewString(),
		Approval:    domain.NewDraftApproval(),
		AuditFields: domain.NewAuditFields(actor.UserID, s.now()),
	}
	req.ApplyTo(&party)
	if err := party.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.SaveParty(ctx, party); err != nil {
		s.LogError(ctx, err, "Failed to save party", slog.String("role", string(party.Role)))
		return nil, err
	}
	s.LogInfo(ctx, "Party created successfully",
		slog.String("party_id", party.PartyID),
		slog.String("role", string(party.Role)))
	return &party, nil
}

func (s *partyService) UpdateParty(ctx context.Context, partyID string, req dto.PartyRequest, actor domain.Actor) (*domain.Party, error) {
	return s.Edit(ctx, partyID, req.Version, actor, func(p *domain.Party) error {
		req.ApplyTo(p)
		return p.Validate()
	})
}

func (s *partyService) GetPartyByID(ctx context.Context, partyID string, actor domain.Actor) (*domain.Party, error) {
	if err := s.AuthorizeUser(ctx, actor, domain.CapabilityRead); err != nil {
		return nil, err
	}
	return s.repo.FindPartyByID(ctx, partyID)
}

func (s *partyService) ListParties(ctx context.Context, params dto.ListMasterDataParams, actor domain.Actor) ([]domain.Party, error) {
	if err := s.AuthorizeUser(ctx, actor, domain.CapabilityRead); err != nil {
		return nil, err
	}
	return s.repo.ListParties(ctx, toMasterDataFilter(params))
}

var (
	_ portssvc.ProjectSvcFacade = (*projectService)(nil)
	_ portssvc.UnitSvcFacade    = (*unitService)(nil)
	_ portssvc.PartySvcFacade   = (*partyService)(nil)
)
