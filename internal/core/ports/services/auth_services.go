package services

import (
	"context"
	"time"

	"github.com/SscSPs/lease_management_app/internal/core/domain"
)

// TokenSvcFacade defines the interface for token management services.
type TokenSvcFacade interface {
	// GenerateAccessToken signs a JWT carrying the user's id and role.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}
