package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/lease_management_app/internal/core/domain"
)

// UserReader looks up back office users. Soft-deleted users are never
// returned and are reported as apperrors.ErrNotFound.
type UserReader interface {
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	// FindUserByUsername matches the stored, lowercased username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)
}

// UserWriter persists users. A username clash is reported as
// apperrors.ErrDuplicate.
type UserWriter interface {
	SaveUser(ctx context.Context, user domain.User) error
	// UpdateUser writes the name, role and audit fields.
	UpdateUser(ctx context.Context, user domain.User) error
	MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error
}

// UserRepositoryFacade is the user store used by the user service.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
