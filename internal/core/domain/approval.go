package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/lease_management_app/internal/apperrors"
)

// ApprovalStatus is the workflow state of a record submitted by data entry.
type ApprovalStatus string

const (
	StatusDraft           ApprovalStatus = "DRAFT"
	StatusPendingApproval ApprovalStatus = "PENDING_APPROVAL"
	StatusApproved        ApprovalStatus = "APPROVED"
	StatusRejected        ApprovalStatus = "REJECTED"
)

// IsValid reports whether s is a known status.
func (s ApprovalStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusPendingApproval, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// WorkflowEvent is an action applied to an approvable record.
type WorkflowEvent string

const (
	EventSubmit   WorkflowEvent = "submit"
	EventApprove  WorkflowEvent = "approve"
	EventReject   WorkflowEvent = "reject"
	EventResubmit WorkflowEvent = "resubmit"
	EventRevise   WorkflowEvent = "revise" // Rejected back to Draft
	EventEdit     WorkflowEvent = "edit"   // content change; status is kept
)

// EntityType names the kind of record moving through the workflow.
type EntityType string

const (
	EntityLease   EntityType = "LEASE"
	EntityParty   EntityType = "PARTY"
	EntityUnit    EntityType = "UNIT"
	EntityProject EntityType = "PROJECT"
)

// Approval is the workflow state embedded in every approvable record.
type Approval struct {
	Status               ApprovalStatus `json:"status"`
	SubmittedBy          string         `json:"submittedBy,omitempty"`
	SubmittedAt          *time.Time     `json:"submittedAt,omitempty"`
	ReviewedBy           string         `json:"reviewedBy,omitempty"`
	ReviewedAt           *time.Time     `json:"reviewedAt,omitempty"`
	RejectionReason      string         `json:"rejectionReason,omitempty"`
	EditedSinceRejection bool           `json:"editedSinceRejection"`
}

// NewDraftApproval returns the initial workflow state of a record.
func NewDraftApproval() Approval {
	return Approval{Status: StatusDraft}
}

// Approvable is the capability a record needs to move through the workflow.
type Approvable interface {
	EntityID() string
	EntityType() EntityType
	Validate() error
	ApprovalState() *Approval
	Audit() *AuditFields
}

var transitions = map[ApprovalStatus]map[WorkflowEvent]ApprovalStatus{
	StatusDraft: {
		EventSubmit: StatusPendingApproval,
		EventEdit:   StatusDraft,
	},
	StatusPendingApproval: {
		EventApprove: StatusApproved,
		EventReject:  StatusRejected,
	},
	StatusRejected: {
		EventResubmit: StatusPendingApproval,
		EventRevise:   StatusDraft,
		EventEdit:     StatusRejected,
	},
}

var eventCapability = map[WorkflowEvent]Capability{
	EventSubmit:   CapabilityEdit,
	EventResubmit: CapabilityEdit,
	EventRevise:   CapabilityEdit,
	EventEdit:     CapabilityEdit,
	EventApprove:  CapabilityReview,
	EventReject:   CapabilityReview,
}

// NextStatus returns the state reached by applying event to current.
func NextStatus(current ApprovalStatus, event WorkflowEvent) (ApprovalStatus, error) {
	next, ok := transitions[current][event]
	if !ok {
		return "", &apperrors.InvalidTransitionError{Current: string(current), Event: string(event)}
	}
	return next, nil
}

// TransitionInput carries the event and who performs it.
type TransitionInput struct {
	Event  WorkflowEvent
	Actor  Actor
	Reason string
	At     time.Time
}

// Apply returns the approval state after the event. The receiver is never
// modified, so a failed guard leaves the record untouched. validate is run
// for events that place a record in front of a reviewer.
func (a Approval) Apply(in TransitionInput, validate func() error) (Approval, error) {
	next, err := NextStatus(a.Status, in.Event)
	if err != nil {
		return a, err
	}
	if c, ok := eventCapability[in.Event]; ok && !in.Actor.Can(c) {
		return a, fmt.Errorf("%w: role %s cannot %s", apperrors.ErrForbidden, in.Actor.Role, in.Event)
	}

	out := a
	out.Status = next
	at := in.At
	switch in.Event {
	case EventSubmit, EventResubmit:
		if in.Event == EventResubmit && !a.EditedSinceRejection {
			return a, &apperrors.InvalidTransitionError{Current: string(a.Status), Event: string(in.Event)}
		}
		if validate != nil {
			if err := validate(); err != nil {
				return a, err
			}
		}
		out.SubmittedBy = in.Actor.UserID
		out.SubmittedAt = &at
		out.ReviewedBy = ""
		out.ReviewedAt = nil
		out.EditedSinceRejection = false
	case EventApprove:
		out.ReviewedBy = in.Actor.UserID
		out.ReviewedAt = &at
		out.RejectionReason = ""
	case EventReject:
		reason := strings.TrimSpace(in.Reason)
		if reason == "" {
			return a, apperrors.NewValidationError("reason", in.Reason, "rejection reason is required")
		}
		out.ReviewedBy = in.Actor.UserID
		out.ReviewedAt = &at
		out.RejectionReason = reason
		out.EditedSinceRejection = false
	case EventEdit:
		if a.Status == StatusRejected {
			out.EditedSinceRejection = true
		}
	case EventRevise:
		out.EditedSinceRejection = false
	}
	return out, nil
}

// ApprovalEvent describes a committed workflow transition for downstream collaborators.
type ApprovalEvent struct {
	EntityType EntityType     `json:"entity_type"`
	EntityID   string         `json:"entity_id"`
	Event      WorkflowEvent  `json:"event"`
	From       ApprovalStatus `json:"from"`
	To         ApprovalStatus `json:"to"`
	ActorID    string         `json:"actor_id"`
	Reason     string         `json:"reason,omitempty"`
	Version    int64          `json:"version"`
	OccurredAt time.Time      `json:"occurred_at"`
}
