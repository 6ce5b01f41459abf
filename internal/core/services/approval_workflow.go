package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/lease_management_app/internal/apperrors"
	"github.com/SscSPs/lease_management_app/internal/core/domain"
	"github.com/SscSPs/lease_management_app/internal/core/ports"
)

// defaultMaxAttempts bounds how often a transition is retried after losing a
// compare-and-swap to a concurrent writer.
const defaultMaxAttempts = 3

// Transition outcomes reported to WorkflowMetrics.
const (
	outcomeOK                = "ok"
	outcomeInvalidTransition = "invalid_transition"
	outcomeForbidden         = "forbidden"
	outcomeValidation        = "validation"
	outcomeConflict          = "conflict"
	outcomeError             = "error"
)

// approvalWorkflow drives any approvable record through the approval state
// machine. T is the record type and P its pointer, which carries the
// domain.Approvable methods. Writes are compare-and-swap on the record's
// version: a transition that loses the race reloads and re-applies, so a
// reviewer whose approve lost to a concurrent reject sees InvalidTransition.
type approvalWorkflow[T any, P interface {
	*T
	domain.Approvable
}] struct {
	BaseService
	entity domain.EntityType

	load        func(ctx context.Context, id string) (*T, error)
	saveState   func(ctx context.Context, rec *T, expectedVersion int64) error
	saveContent func(ctx context.Context, rec *T, expectedVersion int64) error
	// validate overrides P.Validate for submissions when set, e.g. to add
	// reference checks that need a repository.
	validate func(ctx context.Context, rec *T) error

	publisher   ports.ApprovalEventPublisher
	metrics     ports.WorkflowMetrics
	maxAttempts int
}

// Submit sends a Draft record for review, or resubmits a Rejected one.
func (w *approvalWorkflow[T, P]) Submit(ctx context.Context, id string, actor domain.Actor) (*T, error) {
	return w.Transition(ctx, id, domain.EventSubmit, "", actor)
}

// Approve accepts a pending submission.
func (w *approvalWorkflow[T, P]) Approve(ctx context.Context, id string, actor domain.Actor) (*T, error) {
	return w.Transition(ctx, id, domain.EventApprove, "", actor)
}

// Reject returns a pending submission to data entry.
func (w *approvalWorkflow[T, P]) Reject(ctx context.Context, id string, reason string, actor domain.Actor) (*T, error) {
	return w.Transition(ctx, id, domain.EventReject, reason, actor)
}

// Revise moves a Rejected record back to Draft.
func (w *approvalWorkflow[T, P]) Revise(ctx context.Context, id string, actor domain.Actor) (*T, error) {
	return w.Transition(ctx, id, domain.EventRevise, "", actor)
}

// Transition applies event to the record and persists the new state.
// A submit on a Rejected record is treated as a resubmit.
func (w *approvalWorkflow[T, P]) Transition(ctx context.Context, id string, event domain.WorkflowEvent, reason string, actor domain.Actor) (*T, error) {
	logger := w.GetLogger(ctx).With(
		slog.String("entity_type", string(w.entity)),
		slog.String("entity_id", id),
		slog.String("user_id", actor.UserID),
	)

	for attempt := 1; ; attempt++ {
		rec, err := w.load(ctx, id)
		if err != nil {
			w.observe(event, err)
			return nil, err
		}
		p := P(rec)
		state := p.ApprovalState()

		applied := event
		if applied == domain.EventSubmit && state.Status == domain.StatusRejected {
			applied = domain.EventResubmit
		}
		from := state.Status
		now := w.now()

		next, err := state.Apply(domain.TransitionInput{Event: applied, Actor: actor, Reason: reason, At: now}, w.validator(ctx, rec))
		if err != nil {
			logger.Info("Workflow transition refused", slog.String("event", string(applied)), slog.String("error", err.Error()))
			w.observe(applied, err)
			return nil, err
		}

		audit := p.Audit()
		expected := audit.Version
		*state = next
		audit.Touch(actor.UserID, now)
		audit.Version = expected + 1

		err = w.saveState(ctx, rec, expected)
		if errors.Is(err, apperrors.ErrStaleVersion) && attempt < w.attempts() {
			logger.Debug("Lost compare-and-swap, retrying", slog.Int("attempt", attempt))
			if w.metrics != nil {
				w.metrics.ObserveCASRetry(w.entity)
			}
			continue
		}
		if err != nil {
			logger.Error("Failed to persist workflow transition", slog.String("error", err.Error()))
			w.observe(applied, err)
			return nil, err
		}

		logger.Info("Workflow transition committed",
			slog.String("event", string(applied)),
			slog.String("from", string(from)),
			slog.String("to", string(next.Status)))
		w.publish(ctx, domain.ApprovalEvent{
			EntityType: w.entity,
			EntityID:   id,
			Event:      applied,
			From:       from,
			To:         next.Status,
			ActorID:    actor.UserID,
			Reason:     next.RejectionReason,
			Version:    audit.Version,
			OccurredAt: now,
		})
		w.observe(applied, nil)
		return rec, nil
	}
}

// Edit changes a record's content without moving it through the workflow.
// It is allowed in Draft and Rejected; an edit in Rejected marks the record
// as edited since rejection so it may be resubmitted. When clientVersion is
// set it must equal the stored version.
func (w *approvalWorkflow[T, P]) Edit(ctx context.Context, id string, clientVersion *int64, actor domain.Actor, mutate func(rec *T) error) (*T, error) {
	for attempt := 1; ; attempt++ {
		rec, err := w.load(ctx, id)
		if err != nil {
			return nil, err
		}
		p := P(rec)
		audit := p.Audit()
		if clientVersion != nil && *clientVersion != audit.Version {
			return nil, apperrors.NewAppError(http.StatusConflict,
				fmt.Sprintf("%s %s is at version %d, not %d", w.entity, id, audit.Version, *clientVersion),
				apperrors.ErrStaleVersion)
		}

		state := p.ApprovalState()
		now := w.now()
		next, err := state.Apply(domain.TransitionInput{Event: domain.EventEdit, Actor: actor, At: now}, nil)
		if err != nil {
			w.observe(domain.EventEdit, err)
			return nil, err
		}
		if err := mutate(rec); err != nil {
			w.observe(domain.EventEdit, err)
			return nil, err
		}

		expected := audit.Version
		*state = next
		audit.Touch(actor.UserID, now)
		audit.Version = expected + 1

		err = w.saveContent(ctx, rec, expected)
		if errors.Is(err, apperrors.ErrStaleVersion) && clientVersion == nil && attempt < w.attempts() {
			if w.metrics != nil {
				w.metrics.ObserveCASRetry(w.entity)
			}
			continue
		}
		if err != nil {
			w.LogError(ctx, err, "Failed to save edit", slog.String("entity_id", id))
			w.observe(domain.EventEdit, err)
			return nil, err
		}
		w.observe(domain.EventEdit, nil)
		return rec, nil
	}
}

func (w *approvalWorkflow[T, P]) validator(ctx context.Context, rec *T) func() error {
	if w.validate != nil {
		return func() error { return w.validate(ctx, rec) }
	}
	return P(rec).Validate
}

func (w *approvalWorkflow[T, P]) attempts() int {
	if w.maxAttempts > 0 {
		return w.maxAttempts
	}
	return defaultMaxAttempts
}

// publish hands the event to the publisher. The transition is already
// committed, so a failure is logged and not returned.
func (w *approvalWorkflow[T, P]) publish(ctx context.Context, event domain.ApprovalEvent) {
	if w.publisher == nil {
		return
	}
	if err := w.publisher.Publish(ctx, event); err != nil {
		w.LogError(ctx, err, "Failed to publish approval event",
			slog.String("entity_type", string(event.EntityType)),
			slog.String("entity_id", event.EntityID),
			slog.String("event", string(event.Event)))
	}
}

func (w *approvalWorkflow[T, P]) observe(event domain.WorkflowEvent, err error) {
	if w.metrics == nil {
		return
	}
	w.metrics.ObserveTransition(w.entity, event, outcomeOf(err))
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return outcomeOK
	case errors.Is(err, apperrors.ErrInvalidTransition):
		return outcomeInvalidTransition
	case errors.Is(err, apperrors.ErrForbidden):
		return outcomeForbidden
	case errors.Is(err, apperrors.ErrValidation):
		return outcomeValidation
	case errors.Is(err, apperrors.ErrStaleVersion), errors.Is(err, apperrors.ErrConflict):
		return outcomeConflict
	}
	return outcomeError
}
