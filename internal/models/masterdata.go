package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Project is a row of the projects table.
type Project struct {
	ProjectID string  `db:"project_id"`
	Name      string  `db:"name"`
	Code      string  `db:"code"`
	Address   *string `db:"address"`
	City      *string `db:"city"`
	ApprovalColumns
	AuditFields
}

// Unit is a row of the units table.
type Unit struct {
	UnitID     string          `db:"unit_id"`
	ProjectID  string          `db:"project_id"`
	UnitNumber string          `db:"unit_number"`
	Floor      *string         `db:"floor"`
	AreaSqFt   decimal.Decimal `db:"area_sq_ft"`
	UnitType   *string         `db:"unit_type"`
	ApprovalColumns
	AuditFields
}

// Party is a row of the parties table.
type Party struct {
	PartyID     string  `db:"party_id"`
	PartyType   string  `db:"party_type"`
	Role        string  `db:"role"`
	FirstName   *string `db:"first_name"`
	LastName    *string `db:"last_name"`
	CompanyName *string `db:"company_name"`
	Email       *string `db:"email"`
	Phone       *string `db:"phone"`
	IDType      *string `db:"id_type"`
	IDNumber    *string `db:"id_number"`
	Address     *string `db:"address"`
	ApprovalColumns
	AuditFields
}

// Ownership is a row of unit_ownerships.
type Ownership struct {
	OwnershipID string     `db:"ownership_id"`
	UnitID      string     `db:"unit_id"`
	PartyID     string     `db:"party_id"`
	StartDate   time.Time  `db:"start_date"`
	EndDate     *time.Time `db:"end_date"`
	Status      string     `db:"status"`
	AuditFields
}
