package events

import (
	"context"
	"log/slog"

	"github.com/SscSPs/lease_management_app/internal/core/domain"
	"github.com/SscSPs/lease_management_app/internal/core/ports"
	"github.com/SscSPs/lease_management_app/internal/middleware"
)

// LogPublisher writes approval events to the request logger. It is used
// when no Redis address is configured.
type LogPublisher struct{}

var _ ports.ApprovalEventPublisher = LogPublisher{}

func (LogPublisher) Publish(ctx context.Context, event domain.ApprovalEvent) error {
	middleware.GetLoggerFromCtx(ctx).InfoContext(ctx, "Approval event",
		slog.String("entity_type", string(event.EntityType)),
		slog.String("entity_id", event.EntityID),
		slog.String("event", string(event.Event)),
		slog.String("from", string(event.From)),
		slog.String("to", string(event.To)),
		slog.String("actor_id", event.ActorID),
		slog.Int64("version", event.Version),
	)
	return nil
}
