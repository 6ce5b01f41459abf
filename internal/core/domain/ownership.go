package domain

import (
	"fmt"

	"github.com/SscSPs/lease_management_app/internal/apperrors"
)

// OwnershipStatus is the state of an ownership record.
type OwnershipStatus string

const (
	OwnershipActive OwnershipStatus = "ACTIVE"
	OwnershipEnded  OwnershipStatus = "ENDED"
)

// OwnershipRecord links a party to a unit for a date range. A unit has at
// most one ACTIVE record at any time.
type OwnershipRecord struct {
	OwnershipID string          `json:"ownershipID"`
	UnitID      string          `json:"unitID"`
	PartyID     string          `json:"partyID"`
	StartDate   Date            `json:"startDate"`
	EndDate     Date            `json:"endDate"` // zero while active
	Status      OwnershipStatus `json:"status"`
	AuditFields
}

// Validate checks the record's own fields.
func (o *OwnershipRecord) Validate() error {
	ve := &apperrors.ValidationError{}
	if o.UnitID == "" {
		ve.Add("unit_id", o.UnitID, "is required")
	}
	if o.PartyID == "" {
		ve.Add("party_id", o.PartyID, "is required")
	}
	if o.StartDate.IsZero() {
		ve.Add("start_date", nil, "is required")
	}
	if !o.EndDate.IsZero() && o.EndDate.Before(o.StartDate) {
		ve.Add("end_date", o.EndDate.String(), "must not be before start_date")
	}
	return ve.OrNil()
}

// CanAssign checks that a new active ownership can be added next to the
// unit's existing records.
func CanAssign(existing []OwnershipRecord, next OwnershipRecord) error {
	for _, rec := range existing {
		if rec.UnitID == next.UnitID && rec.Status == OwnershipActive {
			return apperrors.NewConflictError(fmt.Sprintf(
				"unit %s already has an active owner %s; end that ownership first", rec.UnitID, rec.PartyID))
		}
	}
	return nil
}

// End closes an active record on endDate.
func (o *OwnershipRecord) End(endDate Date) error {
	if o.Status != OwnershipActive {
		return &apperrors.InvalidTransitionError{Current: string(o.Status), Event: "end"}
	}
	if endDate.Before(o.StartDate) {
		return apperrors.NewValidationError("end_date", endDate.String(), "must not be before start_date "+o.StartDate.String())
	}
	o.EndDate = endDate
	o.Status = OwnershipEnded
	return nil
}
