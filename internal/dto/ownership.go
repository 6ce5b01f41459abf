package dto

import (
	"github.com/SscSPs/lease_management_app/internal/core/domain"
)

// AssignOwnershipRequest is the body of POST /ownership.
type AssignOwnershipRequest struct {
	UnitID    string      `json:"unit_id" binding:"required"`
	PartyID   string      `json:"party_id" binding:"required"`
	StartDate domain.Date `json:"start_date"`
}

// RemoveOwnershipRequest is the body of POST /ownership/remove.
type RemoveOwnershipRequest struct {
	UnitID  string      `json:"unit_id" binding:"required"`
	PartyID string      `json:"party_id" binding:"required"`
	EndDate domain.Date `json:"end_date"`
}

type OwnershipResponse struct {
	ID        string      `json:"id"`
	UnitID    string      `json:"unit_id"`
	PartyID   string      `json:"party_id"`
	StartDate domain.Date `json:"start_date"`
	EndDate   domain.Date `json:"end_date"`
	Status    string      `json:"status"`
	AuditInfo
}

func ToOwnershipResponse(o *domain.OwnershipRecord) OwnershipResponse {
	return OwnershipResponse{
		ID:        o.OwnershipID,
		UnitID:    o.UnitID,
		PartyID:   o.PartyID,
		StartDate: o.StartDate,
		EndDate:   o.EndDate,
		Status:    string(o.Status),
		AuditInfo: toAuditInfo(o.AuditFields),
	}
}

// OwnershipHistoryResponse lists a unit's ownership records, most recent first.
type OwnershipHistoryResponse struct {
	UnitID  string              `json:"unit_id"`
	Records []OwnershipResponse `json:"records"`
}

func ToOwnershipHistoryResponse(unitID string, records []domain.OwnershipRecord) OwnershipHistoryResponse {
	out := make([]OwnershipResponse, len(records))
	for i := range records {
		out[i] = ToOwnershipResponse(&records[i])
	}
	return OwnershipHistoryResponse{UnitID: unitID, Records: out}
}
