package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/lease_management_app/internal/apperrors"
	"github.com/SscSPs/lease_management_app/internal/core/domain"
	"github.com/SscSPs/lease_management_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	// Now returns the current time. Tests replace it for stable timestamps.
	Now func() time.Time
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// AuthorizeUser checks that the actor's role grants the capability.
func (s *BaseService) AuthorizeUser(ctx context.Context, actor domain.Actor, capability domain.Capability) error {
	if actor.Can(capability) {
		return nil
	}
	s.GetLogger(ctx).Warn("Actor lacks capability",
		slog.String("user_id", actor.UserID),
		slog.String("role", string(actor.Role)),
		slog.String("capability", string(capability)))
	return fmt.Errorf("%w: role %q lacks %s", apperrors.ErrForbidden, actor.Role, capability)
}

func (s *BaseService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}
