package domain

import (
	"strings"

	"github.com/SscSPs/lease_management_app/internal/apperrors"
)

// Project is a building or development that contains units.
type Project struct {
	ProjectID string `json:"projectID"`
	Name      string `json:"name"`
	Code      string `json:"code"`
	Address   string `json:"address,omitempty"`
	City      string `json:"city,omitempty"`
	Approval
	AuditFields
}

func (p *Project) EntityID() string         { return p.ProjectID }
func (p *Project) EntityType() EntityType   { return EntityProject }
func (p *Project) ApprovalState() *Approval { return &p.Approval }
func (p *Project) Audit() *AuditFields      { return &p.AuditFields }

func (p *Project) Validate() error {
	ve := &apperrors.ValidationError{}
	if strings.TrimSpace(p.Name) == "" {
		ve.Add("name", p.Name, "is required")
	}
	if strings.TrimSpace(p.Code) == "" {
		ve.Add("code", p.Code, "is required")
	}
	return ve.OrNil()
}
