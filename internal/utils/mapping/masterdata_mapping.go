package mapping

import (
	"github.com/SscSPs/lease_management_app/internal/core/domain"
	"github.com/SscSPs/lease_management_app/internal/models"
)

func ToModelProject(d domain.Project) models.Project {
	return models.Project{
		ProjectID:       d.ProjectID,
		Name:            d.Name,
		Code:            d.Code,
		Address:         StringPtr(d.Address),
		City:            StringPtr(d.City),
		ApprovalColumns: ToModelApproval(d.Approval),
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainProject(m models.Project) domain.Project {
	return domain.Project{
		ProjectID:   m.ProjectID,
		Name:        m.Name,
		Code:        m.Code,
		Address:     StringValue(m.Address),
		City:        StringValue(m.City),
		Approval:    ToDomainApproval(m.ApprovalColumns),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToModelUnit(d domain.Unit) models.Unit {
	return models.Unit{
		UnitID:          d.UnitID,
		ProjectID:       d.ProjectID,
		UnitNumber:      d.UnitNumber,
		Floor:           StringPtr(d.Floor),
		AreaSqFt:        d.AreaSqFt,
		UnitType:        StringPtr(d.UnitType),
		ApprovalColumns: ToModelApproval(d.Approval),
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainUnit(m models.Unit) domain.Unit {
	return domain.Unit{
		UnitID:      m.UnitID,
		ProjectID:   m.ProjectID,
		UnitNumber:  m.UnitNumber,
		Floor:       StringValue(m.Floor),
		AreaSqFt:    m.AreaSqFt,
		UnitType:    StringValue(m.UnitType),
		Approval:    ToDomainApproval(m.ApprovalColumns),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToModelParty(d domain.Party) models.Party {
	return models.Party{
		PartyID:         d.PartyID,
		PartyType:       string(d.PartyType),
		Role:            string(d.Role),
		FirstName:       StringPtr(d.FirstName),
		LastName:        StringPtr(d.LastName),
		CompanyName:     StringPtr(d.CompanyName),
		Email:           StringPtr(d.Email),
		Phone:           StringPtr(d.Phone),
		IDType:          StringPtr(d.IDType),
		IDNumber:        StringPtr(d.IDNumber),
		Address:         StringPtr(d.Address),
		ApprovalColumns: ToModelApproval(d.Approval),
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainParty(m models.Party) domain.Party {
	return domain.Party{
		PartyID:     m.PartyID,
		PartyType:   domain.PartyType(m.PartyType),
		Role:        domain.PartyRole(m.Role),
		FirstName:   StringValue(m.FirstName),
		LastName:    StringValue(m.LastName),
		CompanyName: StringValue(m.CompanyName),
		Email:       StringValue(m.Email),
		Phone:       StringValue(m.Phone),
		IDType:      StringValue(m.IDType),
		IDNumber:    StringValue(m.IDNumber),
		Address:     StringValue(m.Address),
		Approval:    ToDomainApproval(m.ApprovalColumns),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToModelOwnership(d domain.OwnershipRecord) models.Ownership {
	return models.Ownership{
		OwnershipID: d.OwnershipID,
		UnitID:      d.UnitID,
		PartyID:     d.PartyID,
		StartDate:   DateToTime(d.StartDate),
		EndDate:     DatePtr(d.EndDate),
		Status:      string(d.Status),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainOwnership(m models.Ownership) domain.OwnershipRecord {
	return domain.OwnershipRecord{
		OwnershipID: m.OwnershipID,
		UnitID:      m.UnitID,
		PartyID:     m.PartyID,
		StartDate:   domain.DateOf(m.StartDate),
		EndDate:     DateFromPtr(m.EndDate),
		Status:      domain.OwnershipStatus(m.Status),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
