package dto

import (
	"github.com/SscSPs/lease_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListMasterDataParams are the query parameters of master-data listings.
type ListMasterDataParams struct {
	Status    string `form:"status" binding:"omitempty,oneof=DRAFT PENDING_APPROVAL APPROVED REJECTED"`
	ProjectID string `form:"projectId"`
	Role      string `form:"role" binding:"omitempty,oneof=OWNER TENANT SUB_TENANT"`
	Limit     int    `form:"limit,default=20" binding:"min=1,max=100"`
	Offset    int    `form:"offset,default=0" binding:"min=0"`
}

// --- Projects ---

// ProjectRequest creates or edits a project.
type ProjectRequest struct {
	Name    string `json:"name" binding:"required,max=200"`
	Code    string `json:"code" binding:"required,max=50"`
	Address string `json:"address"`
	City    string `json:"city" binding:"max=100"`
	Version *int64 `json:"version,omitempty"`
}

// ApplyTo copies the request onto p.
func (r ProjectRequest) ApplyTo(p *domain.Project) {
	p.Name = r.Name
	p.Code = r.Code
	p.Address = r.Address
	p.City = r.City
}

type ProjectResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Code    string `json:"code"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	ApprovalInfo
	AuditInfo
}

func ToProjectResponse(p *domain.Project) ProjectResponse {
	return ProjectResponse{
		ID:           p.ProjectID,
		Name:         p.Name,
		Code:         p.Code,
		Address:      p.Address,
		City:         p.City,
		ApprovalInfo: toApprovalInfo(p.Approval),
		AuditInfo:    toAuditInfo(p.AuditFields),
	}
}

// --- Units ---

// UnitRequest creates or edits a unit.
type UnitRequest struct {
	ProjectID  string          `json:"project_id" binding:"required"`
	UnitNumber string          `json:"unit_number" binding:"required,max=50"`
	Floor      string          `json:"floor" binding:"max=20"`
	AreaSqFt   decimal.Decimal `json:"area_sq_ft" binding:"dgt0"`
	UnitType   string          `json:"unit_type" binding:"max=50"`
	Version    *int64          `json:"version,omitempty"`
}

func (r UnitRequest) ApplyTo(u *domain.Unit) {
	u.ProjectID = r.ProjectID
	u.UnitNumber = r.UnitNumber
	u.Floor = r.Floor
	u.AreaSqFt = r.AreaSqFt
	u.UnitType = r.UnitType
}

type UnitResponse struct {
	ID         string          `json:"id"`
	ProjectID  string          `json:"project_id"`
	UnitNumber string          `json:"unit_number"`
	Floor      string          `json:"floor,omitempty"`
	AreaSqFt   decimal.Decimal `json:"area_sq_ft"`
	UnitType   string          `json:"unit_type,omitempty"`
	ApprovalInfo
	AuditInfo
}

func ToUnitResponse(u *domain.Unit) UnitResponse {
	return UnitResponse{
		ID:           u.UnitID,
		ProjectID:    u.ProjectID,
		UnitNumber:   u.UnitNumber,
		Floor:        u.Floor,
		AreaSqFt:     u.AreaSqFt,
		UnitType:     u.UnitType,
		ApprovalInfo: toApprovalInfo(u.Approval),
		AuditInfo:    toAuditInfo(u.AuditFields),
	}
}

// --- Parties ---

// PartyRequest creates or edits an owner, tenant or sub-tenant.
type PartyRequest struct {
	PartyType   string `json:"party_type" binding:"required,oneof=INDIVIDUAL COMPANY"`
	Role        string `json:"role" binding:"required,oneof=OWNER TENANT SUB_TENANT"`
	FirstName   string `json:"first_name" binding:"max=100"`
	LastName    string `json:"last_name" binding:"max=100"`
	CompanyName string `json:"company_name" binding:"max=200"`
	Email       string `json:"email" binding:"omitempty,email"`
	Phone       string `json:"phone" binding:"max=30"`
	IDType      string `json:"id_type" binding:"max=30"`
	IDNumber    string `json:"id_number" binding:"max=50"`
	Address     string `json:"address"`
	Version     *int64 `json:"version,omitempty"`
}

func (r PartyRequest) ApplyTo(p *domain.Party) {
	p.PartyType = domain.PartyType(r.PartyType)
	p.Role = domain.PartyRole(r.Role)
	p.FirstName = r.FirstName
	p.LastName = r.LastName
	p.CompanyName = r.CompanyName
	p.Email = r.Email
	p.Phone = r.Phone
	p.IDType = r.IDType
	p.IDNumber = r.IDNumber
	p.Address = r.Address
}

type PartyResponse struct {
	ID          string `json:"id"`
	PartyType   string `json:"party_type"`
	Role        string `json:"role"`
	DisplayName string `json:"display_name"`
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	IDType      string `json:"id_type,omitempty"`
	IDNumber    string `json:"id_number,omitempty"`
	Address     string `json:"address,omitempty"`
	ApprovalInfo
	AuditInfo
}

func ToPartyResponse(p *domain.Party) PartyResponse {
	return PartyResponse{
		ID:           p.PartyID,
		PartyType:    string(p.PartyType),
		Role:         string(p.Role),
		DisplayName:  p.DisplayName(),
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		CompanyName:  p.CompanyName,
		Email:        p.Email,
		Phone:        p.Phone,
		IDType:       p.IDType,
		IDNumber:     p.IDNumber,
		Address:      p.Address,
		ApprovalInfo: toApprovalInfo(p.Approval),
		AuditInfo:    toAuditInfo(p.AuditFields),
	}
}
