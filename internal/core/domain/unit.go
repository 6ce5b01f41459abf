package domain

import (
	"strings"

	"github.com/SscSPs/lease_management_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Unit is a leasable space inside a project.
type Unit struct {
	UnitID     string          `json:"unitID"`
	ProjectID  string          `json:"projectID"`
	UnitNumber string          `json:"unitNumber"`
	Floor      string          `json:"floor,omitempty"`
	AreaSqFt   decimal.Decimal `json:"areaSqFt"`
	UnitType   string          `json:"unitType,omitempty"` // e.g. RETAIL, OFFICE, KIOSK
	Approval
	AuditFields
}

func (u *Unit) EntityID() string         { return u.UnitID }
func (u *Unit) EntityType() EntityType   { return EntityUnit }
func (u *Unit) ApprovalState() *Approval { return &u.Approval }
func (u *Unit) Audit() *AuditFields      { return &u.AuditFields }

func (u *Unit) Validate() error {
	ve := &apperrors.ValidationError{}
	if u.ProjectID == "" {
		ve.Add("project_id", u.ProjectID, "is required")
	}
	if strings.TrimSpace(u.UnitNumber) == "" {
		ve.Add("unit_number", u.UnitNumber, "is required")
	}
	if !u.AreaSqFt.IsPositive() {
		ve.Add("area_sq_ft", u.AreaSqFt.String(), "must be positive")
	}
	return ve.OrNil()
}
