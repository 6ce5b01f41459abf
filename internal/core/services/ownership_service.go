package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/lease_management_app/internal/apperrors"
	"github.com/SscSPs/lease_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/lease_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/lease_management_app/internal/core/ports/services"
	"github.com/SscSPs/lease_management_app/internal/dto"
	"github.com/google/uuid"
)

type ownershipService struct {
	BaseService
	ownershipRepo portsrepo.OwnershipRepositoryFacade
	unitRepo      portsrepo.UnitRepositoryFacade
	partyRepo     portsrepo.PartyRepositoryFacade
}

// NewOwnershipService creates the ownership service.
func NewOwnershipService(ownershipRepo portsrepo.OwnershipRepositoryFacade, unitRepo portsrepo.UnitRepositoryFacade, partyRepo portsrepo.PartyRepositoryFacade) portssvc.OwnershipSvcFacade {
	return &ownershipService{
		ownershipRepo: ownershipRepo,
		unitRepo:      unitRepo,
		partyRepo:     partyRepo,
	}
}

var _ portssvc.OwnershipSvcFacade = (*ownershipService)(nil)

func (s *ownershipService) AssignOwnership(ctx context.Context, req dto.AssignOwnershipRequest, actor domain.Actor) (*domain.OwnershipRecord, error) {
	if err := s.AuthorizeUser(ctx, actor, domain.CapabilityEdit); err != nil {
		return nil, err
	}

	now := s.now()
	record := domain.OwnershipRecord{
		OwnershipID: uuid.NewString(),
		UnitID:      req.UnitID,
		PartyID:     req.PartyID,
		StartDate:   req.StartDate,
		Status:      domain.OwnershipActive,
		AuditFields: domain.NewAuditFields(actor.UserID, now),
	}
	if record.StartDate.IsZero() {
		record.StartDate = domain.DateOf(now)
	}
	if err := record.Validate(); err != nil {
		return nil, err
	}

	ve := &apperrors.ValidationError{}
	if _, err := s.unitRepo.FindUnitByID(ctx, req.UnitID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		ve.Add("unit_id", req.UnitID, "does not exist")
	}
	party, err := s.partyRepo.FindPartyByID(ctx, req.PartyID)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		ve.Add("party_id", req.PartyID, "does not exist")
	case err != nil:
		return nil, err
	case party.Role != domain.PartyRoleOwner:
		ve.Add("party_id", req.PartyID, fmt.Sprintf("party has role %s, expected OWNER", party.Role))
	}
	if err := ve.OrNil(); err != nil {
		return nil, err
	}

	existing, err := s.ownershipRepo.ListOwnershipByUnit(ctx, req.UnitID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ownership history", slog.String("unit_id", req.UnitID))
		return nil, err
	}
	if err := domain.CanAssign(existing, record); err != nil {
		return nil, err
	}
	// The partial unique index catches a concurrent assignment that passed CanAssign.
	if err := s.ownershipRepo.SaveOwnership(ctx, record); err != nil {
		s.LogError(ctx, err, "Failed to save ownership", slog.String("unit_id", req.UnitID))
		return nil, err
	}

	s.LogInfo(ctx, "Ownership assigned",
		slog.String("unit_id", record.UnitID),
		slog.String("party_id", record.PartyID))
	return &record, nil
}

func (s *ownershipService) RemoveOwnership(ctx context.Context, req dto.RemoveOwnershipRequest, actor domain.Actor) (*domain.OwnershipRecord, error) {
	if err := s.AuthorizeUser(ctx, actor, domain.CapabilityEdit); err != nil {
		return nil, err
	}

	record, err := s.ownershipRepo.FindActiveOwnership(ctx, req.UnitID)
	if err != nil {
		return nil, err
	}
	if record.PartyID != req.PartyID {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf(
			"party %s is not the active owner of unit %s", req.PartyID, req.UnitID))
	}

	now := s.now()
	endDate := req.EndDate
	if endDate.IsZero() {
		endDate = domain.DateOf(now)
	}
	if err := record.End(endDate); err != nil {
		return nil, err
	}
	expected := record.Version
	record.Touch(actor.UserID, now)
	record.Version = expected + 1

	if err := s.ownershipRepo.EndOwnership(ctx, *record, expected); err != nil {
		s.LogError(ctx, err, "Failed to end ownership", slog.String("ownership_id", record.OwnershipID))
		return nil, err
	}
	s.LogInfo(ctx, "Ownership ended",
		slog.String("unit_id", record.UnitID),
		slog.String("party_id", record.PartyID),
		slog.String("end_date", endDate.String()))
	return record, nil
}

func (s *ownershipService) ListOwnershipHistory(ctx context.Context, unitID string, actor domain.Actor) ([]domain.OwnershipRecord, error) {
	if err := s.AuthorizeUser(ctx, actor, domain.CapabilityRead); err != nil {
		return nil, err
	}
	if _, err := s.unitRepo.FindUnitByID(ctx, unitID); err != nil {
		return nil, err
	}
	return s.ownershipRepo.ListOwnershipByUnit(ctx, unitID)
}
