package services_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/SscSPs/lease_management_app/internal/apperrors"
	"github.com/SscSPs/lease_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/lease_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/lease_management_app/internal/core/services"
	"github.com/SscSPs/lease_management_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type MasterDataServiceTestSuite struct {
	suite.Suite
	ctx         context.Context
	projectRepo *MockProjectRepository
	unitRepo    *MockUnitRepository
	partyRepo   *MockPartyRepository
	publisher   *MockEventPublisher
	metrics     *recordingMetrics
	deps        services.WorkflowDeps
}

func (suite *MasterDataServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.projectRepo = new(MockProjectRepository)
	suite.unitRepo = new(MockUnitRepository)
	suite.partyRepo = new(MockPartyRepository)
	suite.publisher = new(MockEventPublisher)
	suite.metrics = newRecordingMetrics()
	suite.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Maybe()
	suite.deps = services.WorkflowDeps{Publisher: suite.publisher, Metrics: suite.metrics}
}

func draftProject(id string) *domain.Project {
	return &domain.Project{
		ProjectID:   id,
		Name:        "Phoenix Mall",
		Code:        "PHX",
		Approval:    domain.NewDraftApproval(),
		AuditFields: domain.NewAuditFields(clerk.UserID, fixedNow),
	}
}

// --- Projects ---

func (suite *MasterDataServiceTestSuite) TestCreateProject() {
	suite.projectRepo.On("SaveProject", suite.ctx, mock.MatchedBy(func(p domain.Project) bool {
		return p.Code == "PHX" && p.Status == domain.StatusDraft && p.Version == 1
	})).Return(nil).Once()
	svc := services.NewProjectService(suite.projectRepo, suite.deps)

	project, err := svc.CreateProject(suite.ctx, dto.ProjectRequest{Name: "Phoenix Mall", Code: "PHX", City: "Pune"}, clerk)

	suite.Require().NoError(err)
	suite.NotEmpty(project.ProjectID)
	suite.Equal(domain.StatusDraft, project.Status)
	suite.projectRepo.AssertExpectations(suite.T())
}

func (suite *MasterDataServiceTestSuite) TestCreateProject_Validation() {
	svc := services.NewProjectService(suite.projectRepo, suite.deps)

	_, err := svc.CreateProject(suite.ctx, dto.ProjectRequest{Name: " ", Code: ""}, clerk)

	var ve *apperrors.ValidationError
	suite.Require().True(errors.As(err, &ve))
	suite.True(ve.HasField("name"))
	suite.True(ve.HasField("code"))
	suite.projectRepo.AssertNotCalled(suite.T(), "SaveProject", mock.Anything, mock.Anything)
}

func (suite *MasterDataServiceTestSuite) TestProjectWorkflow() {
	stored := draftProject("project-1")
	suite.projectRepo.On("FindProjectByID", suite.ctx, "project-1").Return(stored, nil).Once()
	suite.projectRepo.On("UpdateProject", suite.ctx, mock.MatchedBy(func(p domain.Project) bool {
		return p.Status == domain.StatusPendingApproval && p.SubmittedBy == clerk.UserID && p.Version == 2
	}), int64(1)).Return(nil).Once()
	svc := services.NewProjectService(suite.projectRepo, suite.deps)

	project, err := svc.Submit(suite.ctx, "project-1", clerk)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPendingApproval, project.Status)
	suite.Equal(1, suite.metrics.count("PROJECT/submit/ok"))
	suite.publisher.AssertCalled(suite.T(), "Publish", mock.Anything, mock.MatchedBy(func(e domain.ApprovalEvent) bool {
		return e.EntityType == domain.EntityProject && e.EntityID == "project-1"
	}))
	suite.projectRepo.AssertExpectations(suite.T())
}

func (suite *MasterDataServiceTestSuite) TestApprovedProjectCannotBeEdited() {
	approved := draftProject("project-1")
	approved.Status = domain.StatusApproved
	suite.projectRepo.On("FindProjectByID", suite.ctx, "project-1").Return(approved, nil).Once()
	svc := services.NewProjectService(suite.projectRepo, suite.deps)

	_, err := svc.UpdateProject(suite.ctx, "project-1", dto.ProjectRequest{Name: "Renamed", Code: "PHX"}, clerk)

	suite.ErrorIs(err, apperrors.ErrInvalidTransition)
	suite.projectRepo.AssertNotCalled(suite.T(), "UpdateProject", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *MasterDataServiceTestSuite) TestListProjectsPassesFilter() {
	expected := []domain.Project{*draftProject("project-1")}
	suite.projectRepo.On("ListProjects", suite.ctx, portsrepo.MasterDataFilter{
		Status: domain.StatusDraft, Limit: 20,
	}).Return(expected, nil).Once()
	svc := services.NewProjectService(suite.projectRepo, suite.deps)

	projects, err := svc.ListProjects(suite.ctx, dto.ListMasterDataParams{Status: "DRAFT", Limit: 20}, reviewer)

	suite.Require().NoError(err)
	suite.Equal(expected, projects)
}

// --- Units ---

func (suite *MasterDataServiceTestSuite) TestCreateUnit_ProjectMustExist() {
	suite.projectRepo.On("FindProjectByID", suite.ctx, "missing").
		Return(nil, apperrors.NewNotFoundError("project not found")).Once()
	svc := services.NewUnitService(suite.unitRepo, suite.projectRepo, suite.deps)

	_, err := svc.CreateUnit(suite.ctx, dto.UnitRequest{
		ProjectID:  "missing",
		UnitNumber: "G-12",
		AreaSqFt:   decimal.NewFromInt(0),
	}, clerk)

	var ve *apperrors.ValidationError
	suite.Require().True(errors.As(err, &ve))
	suite.True(ve.HasField("project_id"))
	suite.True(ve.HasField("area_sq_ft"))
	suite.unitRepo.AssertNotCalled(suite.T(), "SaveUnit", mock.Anything, mock.Anything)
}

func (suite *MasterDataServiceTestSuite) TestCreateUnit() {
	suite.projectRepo.On("FindProjectByID", suite.ctx, "project-1").Return(draftProject("project-1"), nil).Once()
	suite.unitRepo.On("SaveUnit", suite.ctx, mock.AnythingOfType("domain.Unit")).Return(nil).Once()
	svc := services.NewUnitService(suite.unitRepo, suite.projectRepo, suite.deps)

	unit, err := svc.CreateUnit(suite.ctx, dto.UnitRequest{
		ProjectID:  "project-1",
		UnitNumber: "G-12",
		AreaSqFt:   decimal.RequireFromString("1250.5"),
	}, clerk)

	suite.Require().NoError(err)
	suite.Equal("G-12", unit.UnitNumber)
	suite.True(unit.AreaSqFt.Equal(decimal.RequireFromString("1250.5")))
	suite.unitRepo.AssertExpectations(suite.T())
}

func (suite *MasterDataServiceTestSuite) TestUnitReviewByDataEntryIsForbidden() {
	pending := &domain.Unit{
		UnitID: "unit-1", ProjectID: "project-1", UnitNumber: "G-1", AreaSqFt: decimal.NewFromInt(100),
		Approval:    domain.Approval{Status: domain.StatusPendingApproval},
		AuditFields: domain.NewAuditFields(clerk.UserID, fixedNow),
	}
	suite.unitRepo.On("FindUnitByID", suite.ctx, "unit-1").Return(pending, nil).Once()
	svc := services.NewUnitService(suite.unitRepo, suite.projectRepo, suite.deps)

	_, err := svc.Approve(suite.ctx, "unit-1", clerk)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.unitRepo.AssertNotCalled(suite.T(), "UpdateUnit", mock.Anything, mock.Anything, mock.Anything)
}

// --- Parties ---

func (suite *MasterDataServiceTestSuite) TestRejectAndReviseParty() {
	pending := &domain.Party{
		PartyID: "party-1", PartyType: domain.PartyCompany, Role: domain.PartyRoleTenant, CompanyName: "Acme Retail",
		Approval:    domain.Approval{Status: domain.StatusPendingApproval},
		AuditFields: domain.NewAuditFields(clerk.UserID, fixedNow),
	}
	suite.partyRepo.On("FindPartyByID", suite.ctx, "party-1").Return(pending, nil).Once()
	suite.partyRepo.On("UpdateParty", suite.ctx, mock.MatchedBy(func(p domain.Party) bool {
		return p.Status == domain.StatusRejected && p.RejectionReason == "missing GSTIN"
	}), int64(1)).Return(nil).Once()
	svc := services.NewPartyService(suite.partyRepo, suite.deps)

	party, err := svc.Reject(suite.ctx, "party-1", " missing GSTIN ", reviewer)
	suite.Require().NoError(err)
	suite.Equal(domain.StatusRejected, party.Status)
	suite.Equal("missing GSTIN", party.RejectionReason)

	rejected := *party
	suite.partyRepo.On("FindPartyByID", suite.ctx, "party-1").Return(&rejected, nil).Once()
	suite.partyRepo.On("UpdateParty", suite.ctx, mock.MatchedBy(func(p domain.Party) bool {
		return p.Status == domain.StatusDraft
	}), int64(2)).Return(nil).Once()

	party, err = svc.Revise(suite.ctx, "party-1", clerk)
	suite.Require().NoError(err)
	suite.Equal(domain.StatusDraft, party.Status)
	suite.partyRepo.AssertExpectations(suite.T())
}

func (suite *MasterDataServiceTestSuite) TestPartyValidation() {
	svc := services.NewPartyService(suite.partyRepo, suite.deps)

	_, err := svc.CreateParty(suite.ctx, dto.PartyRequest{PartyType: "INDIVIDUAL", Role: "OWNER", FirstName: "Asha", IDType: "PAN"}, clerk)

	var ve *apperrors.ValidationError
	suite.Require().True(errors.As(err, &ve))
	suite.True(ve.HasField("last_name"))
	suite.True(ve.HasField("id_number"))
}

func (suite *MasterDataServiceTestSuite) TestPartyStaleClientVersion() {
	draft := &domain.Party{
		PartyID: "party-1", PartyType: domain.PartyCompany, Role: domain.PartyRoleOwner, CompanyName: "Acme",
		Approval:    domain.NewDraftApproval(),
		AuditFields: domain.NewAuditFields(clerk.UserID, fixedNow),
	}
	suite.partyRepo.On("FindPartyByID", suite.ctx, "party-1").Return(draft, nil).Once()
	svc := services.NewPartyService(suite.partyRepo, suite.deps)
	stale := int64(4)

	_, err := svc.UpdateParty(suite.ctx, "party-1", dto.PartyRequest{PartyType: "COMPANY", Role: "OWNER", CompanyName: "Acme Ltd", Version: &stale}, clerk)

	suite.ErrorIs(err, apperrors.ErrStaleVersion)
}

func TestMasterDataService(t *testing.T) {
	suite.Run(t, new(MasterDataServiceTestSuite))
}

func TestWorkflowRetriesExhausted(t *testing.T) {
	repo := new(MockProjectRepository)
	for i := 0; i < 3; i++ {
		repo.On("FindProjectByID", mock.Anything, "project-1").Return(draftProject("project-1"), nil).Once()
	}
	stale := apperrors.NewAppError(http.StatusConflict, "modified concurrently", apperrors.ErrStaleVersion)
	repo.On("UpdateProject", mock.Anything, mock.Anything, int64(1)).Return(stale)
	metrics := newRecordingMetrics()
	svc := services.NewProjectService(repo, services.WorkflowDeps{Metrics: metrics})

	_, err := svc.Submit(context.Background(), "project-1", clerk)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrStaleVersion)
	assert.Equal(t, 2, metrics.casRetries)
	assert.Equal(t, 1, metrics.count("PROJECT/submit/conflict"))
	repo.AssertNumberOfCalls(t, "UpdateProject", 3)
}
