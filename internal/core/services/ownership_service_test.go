package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/lease_management_app/internal/apperrors"
	"github.com/SscSPs/lease_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/lease_management_app/internal/core/ports/services"
	"github.com/SscSPs/lease_management_app/internal/core/services"
	"github.com/SscSPs/lease_management_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type OwnershipServiceTestSuite struct {
	suite.Suite
	ctx           context.Context
	ownershipRepo *MockOwnershipRepository
	unitRepo      *MockUnitRepository
	partyRepo     *MockPartyRepository
	service       portssvc.OwnershipSvcFacade
}

func (suite *OwnershipServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.ownershipRepo = new(MockOwnershipRepository)
	suite.unitRepo = new(MockUnitRepository)
	suite.partyRepo = new(MockPartyRepository)
	suite.service = services.NewOwnershipService(suite.ownershipRepo, suite.unitRepo, suite.partyRepo)

	suite.unitRepo.On("FindUnitByID", mock.Anything, "unit-1").Return(&domain.Unit{UnitID: "unit-1"}, nil).Maybe()
	suite.partyRepo.On("FindPartyByID", mock.Anything, "owner-1").
		Return(&domain.Party{PartyID: "owner-1", Role: domain.PartyRoleOwner}, nil).Maybe()
	suite.partyRepo.On("FindPartyByID", mock.Anything, "owner-2").
		Return(&domain.Party{PartyID: "owner-2", Role: domain.PartyRoleOwner}, nil).Maybe()
}

func activeOwnership(partyID string) domain.OwnershipRecord {
	return domain.OwnershipRecord{
		OwnershipID: "own-" + partyID,
		UnitID:      "unit-1",
		PartyID:     partyID,
		StartDate:   domain.MustParseDate("2023-04-01"),
		Status:      domain.OwnershipActive,
		AuditFields: domain.NewAuditFields(clerk.UserID, fixedNow),
	}
}

func (suite *OwnershipServiceTestSuite) TestAssignOwnership() {
	suite.ownershipRepo.On("ListOwnershipByUnit", suite.ctx, "unit-1").Return([]domain.OwnershipRecord{}, nil).Once()
	suite.ownershipRepo.On("SaveOwnership", suite.ctx, mock.MatchedBy(func(o domain.OwnershipRecord) bool {
		return o.UnitID == "unit-1" && o.PartyID == "owner-1" && o.Status == domain.OwnershipActive
	})).Return(nil).Once()

	record, err := suite.service.AssignOwnership(suite.ctx, dto.AssignOwnershipRequest{
		UnitID:    "unit-1",
		PartyID:   "owner-1",
		StartDate: domain.MustParseDate("2024-01-01"),
	}, clerk)

	suite.Require().NoError(err)
	suite.NotEmpty(record.OwnershipID)
	suite.Equal(domain.MustParseDate("2024-01-01"), record.StartDate)
	suite.True(record.EndDate.IsZero())
	suite.ownershipRepo.AssertExpectations(suite.T())
}

func (suite *OwnershipServiceTestSuite) TestAssignOwnership_UnitAlreadyOwned() {
	suite.ownershipRepo.On("ListOwnershipByUnit", suite.ctx, "unit-1").
		Return([]domain.OwnershipRecord{activeOwnership("owner-1")}, nil).Once()

	_, err := suite.service.AssignOwnership(suite.ctx, dto.AssignOwnershipRequest{UnitID: "unit-1", PartyID: "owner-2"}, clerk)

	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.ownershipRepo.AssertNotCalled(suite.T(), "SaveOwnership", mock.Anything, mock.Anything)
}

func (suite *OwnershipServiceTestSuite) TestAssignOwnership_AfterPreviousEnded() {
	ended := activeOwnership("owner-1")
	ended.Status = domain.OwnershipEnded
	ended.EndDate = domain.MustParseDate("2023-12-31")
	suite.ownershipRepo.On("ListOwnershipByUnit", suite.ctx, "unit-1").Return([]domain.OwnershipRecord{ended}, nil).Once()
	suite.ownershipRepo.On("SaveOwnership", suite.ctx, mock.AnythingOfType("domain.OwnershipRecord")).Return(nil).Once()

	_, err := suite.service.AssignOwnership(suite.ctx, dto.AssignOwnershipRequest{UnitID: "unit-1", PartyID: "owner-2"}, clerk)

	suite.NoError(err)
}

func (suite *OwnershipServiceTestSuite) TestAssignOwnership_PartyMustBeOwner() {
	suite.unitRepo.On("FindUnitByID", mock.Anything, "unit-9").Return(nil, apperrors.NewNotFoundError("unit not found")).Once()
	suite.partyRepo.On("FindPartyByID", mock.Anything, "tenant-1").
		Return(&domain.Party{PartyID: "tenant-1", Role: domain.PartyRoleTenant}, nil).Once()

	_, err := suite.service.AssignOwnership(suite.ctx, dto.AssignOwnershipRequest{UnitID: "unit-9", PartyID: "tenant-1"}, clerk)

	var ve *apperrors.ValidationError
	suite.Require().True(errors.As(err, &ve))
	suite.True(ve.HasField("unit_id"))
	suite.True(ve.HasField("party_id"))
}

func (suite *OwnershipServiceTestSuite) TestAssignOwnership_ManagementForbidden() {
	_, err := suite.service.AssignOwnership(suite.ctx, dto.AssignOwnershipRequest{UnitID: "unit-1", PartyID: "owner-1"}, reviewer)

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *OwnershipServiceTestSuite) TestRemoveOwnership() {
	active := activeOwnership("owner-1")
	suite.ownershipRepo.On("FindActiveOwnership", suite.ctx, "unit-1").Return(&active, nil).Once()
	suite.ownershipRepo.On("EndOwnership", suite.ctx, mock.MatchedBy(func(o domain.OwnershipRecord) bool {
		return o.Status == domain.OwnershipEnded && o.EndDate == domain.MustParseDate("2024-06-30") && o.Version == 2
	}), int64(1)).Return(nil).Once()

	record, err := suite.service.RemoveOwnership(suite.ctx, dto.RemoveOwnershipRequest{
		UnitID: "unit-1", PartyID: "owner-1", EndDate: domain.MustParseDate("2024-06-30"),
	}, clerk)

	suite.Require().NoError(err)
	suite.Equal(domain.OwnershipEnded, record.Status)
	suite.ownershipRepo.AssertExpectations(suite.T())
}

func (suite *OwnershipServiceTestSuite) TestRemoveOwnership_WrongParty() {
	active := activeOwnership("owner-1")
	suite.ownershipRepo.On("FindActiveOwnership", suite.ctx, "unit-1").Return(&active, nil).Once()

	_, err := suite.service.RemoveOwnership(suite.ctx, dto.RemoveOwnershipRequest{UnitID: "unit-1", PartyID: "owner-2"}, clerk)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.ownershipRepo.AssertNotCalled(suite.T(), "EndOwnership", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OwnershipServiceTestSuite) TestRemoveOwnership_EndBeforeStart() {
	active := activeOwnership("owner-1")
	suite.ownershipRepo.On("FindActiveOwnership", suite.ctx, "unit-1").Return(&active, nil).Once()

	_, err := suite.service.RemoveOwnership(suite.ctx, dto.RemoveOwnershipRequest{
		UnitID: "unit-1", PartyID: "owner-1", EndDate: domain.MustParseDate("2022-01-01"),
	}, clerk)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *OwnershipServiceTestSuite) TestListOwnershipHistory() {
	ended := activeOwnership("owner-1")
	ended.Status = domain.OwnershipEnded
	history := []domain.OwnershipRecord{activeOwnership("owner-2"), ended}
	suite.ownershipRepo.On("ListOwnershipByUnit", suite.ctx, "unit-1").Return(history, nil).Once()

	records, err := suite.service.ListOwnershipHistory(suite.ctx, "unit-1", reviewer)

	suite.Require().NoError(err)
	suite.Len(records, 2)
}

func (suite *OwnershipServiceTestSuite) TestListOwnershipHistory_UnknownUnit() {
	suite.unitRepo.On("FindUnitByID", mock.Anything, "unit-9").Return(nil, apperrors.NewNotFoundError("unit not found")).Once()

	_, err := suite.service.ListOwnershipHistory(suite.ctx, "unit-9", reviewer)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestOwnershipService(t *testing.T) {
	suite.Run(t, new(OwnershipServiceTestSuite))
}
