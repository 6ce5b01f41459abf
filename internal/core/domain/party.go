package domain

import (
	"strings"

	"github.com/SscSPs/lease_management_app/internal/apperrors"
)

// PartyType distinguishes people from organisations.
type PartyType string

const (
	PartyIndividual PartyType = "INDIVIDUAL"
	PartyCompany    PartyType = "COMPANY"
)

// PartyRole is the capacity a party is registered in.
type PartyRole string

const (
	PartyRoleOwner     PartyRole = "OWNER"
	PartyRoleTenant    PartyRole = "TENANT"
	PartyRoleSubTenant PartyRole = "SUB_TENANT"
)

func (r PartyRole) IsValid() bool {
	switch r {
	case PartyRoleOwner, PartyRoleTenant, PartyRoleSubTenant:
		return true
	}
	return false
}

// Party is an owner, tenant or sub-tenant.
type Party struct {
	PartyID     string    `json:"partyID"`
	PartyType   PartyType `json:"partyType"`
	Role        PartyRole `json:"role"`
	FirstName   string    `json:"firstName,omitempty"`
	LastName    string    `json:"lastName,omitempty"`
	CompanyName string    `json:"companyName,omitempty"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	IDType      string    `json:"idType,omitempty"` // e.g. PAN, GSTIN, PASSPORT
	IDNumber    string    `json:"idNumber,omitempty"`
	Address     string    `json:"address,omitempty"`
	Approval
	AuditFields
}

func (p *Party) EntityID() string         { return p.PartyID }
func (p *Party) EntityType() EntityType   { return EntityParty }
func (p *Party) ApprovalState() *Approval { return &p.Approval }
func (p *Party) Audit() *AuditFields      { return &p.AuditFields }

// DisplayName is the company name or "first last".
func (p *Party) DisplayName() string {
	if p.PartyType == PartyCompany {
		return p.CompanyName
	}
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Validate checks the name rules for the party type.
func (p *Party) Validate() error {
	ve := &apperrors.ValidationError{}
	switch p.PartyType {
	case PartyCompany:
		if strings.TrimSpace(p.CompanyName) == "" {
			ve.Add("company_name", p.CompanyName, "is required for companies")
		}
	case PartyIndividual:
		if strings.TrimSpace(p.FirstName) == "" {
			ve.Add("first_name", p.FirstName, "is required for individuals")
		}
		if strings.TrimSpace(p.LastName) == "" {
			ve.Add("last_name", p.LastName, "is required for individuals")
		}
	default:
		ve.Add("party_type", p.PartyType, "must be one of INDIVIDUAL, COMPANY")
	}
	if !p.Role.IsValid() {
		ve.Add("role", p.Role, "must be one of OWNER, TENANT, SUB_TENANT")
	}
	if (p.IDType == "") != (p.IDNumber == "") {
		ve.Add("id_number", p.IDNumber, "id_type and id_number must be given together")
	}
	return ve.OrNil()
}
