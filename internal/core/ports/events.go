package ports

import (
	"context"
	"time"

	"github.com/SscSPs/lease_management_app/internal/core/domain"
)

// ApprovalEventPublisher hands committed workflow transitions to downstream
// collaborators such as billing and reporting. Delivery is best effort:
// a failed publish never undoes the transition.
type ApprovalEventPublisher interface {
	Publish(ctx context.Context, event domain.ApprovalEvent) error
}

// WorkflowMetrics records workflow outcomes.
type WorkflowMetrics interface {
	// ObserveTransition counts one attempted transition. outcome is "ok" or
	// an error class such as "invalid_transition" or "forbidden".
	ObserveTransition(entity domain.EntityType, event domain.WorkflowEvent, outcome string)

	// ObserveCASRetry counts a compare-and-swap retry after a stale write.
	ObserveCASRetry(entity domain.EntityType)

	// ObserveRentCalculation records how long a rent computation took.
	ObserveRentCalculation(model domain.RentModel, d time.Duration)
}
