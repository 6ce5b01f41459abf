package services

import (
	"context"

	"github.com/SscSPs/lease_management_app/internal/core/domain"
)

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Lease        LeaseSvcFacade
	Project      ProjectSvcFacade
	Unit         UnitSvcFacade
	Party        PartySvcFacade
	Ownership    OwnershipSvcFacade
	Currency     CurrencySvcFacade
	User         UserSvcFacade
	TokenService TokenSvcFacade
}

// WorkflowSvc moves an approvable record through the approval workflow.
// Every method returns the record as stored after the transition.
type WorkflowSvc[T any] interface {
	// Submit sends a Draft record for review. A Rejected record that was
	// edited since the rejection is resubmitted.
	Submit(ctx context.Context, id string, actor domain.Actor) (*T, error)

	// Approve accepts a pending submission.
	Approve(ctx context.Context, id string, actor domain.Actor) (*T, error)

	// Reject returns a pending submission with a mandatory reason.
	Reject(ctx context.Context, id string, reason string, actor domain.Actor) (*T, error)

	// Revise moves a Rejected record back to Draft.
	Revise(ctx context.Context, id string, actor domain.Actor) (*T, error)
}
