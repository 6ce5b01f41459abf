package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/lease_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/lease_management_app/internal/core/ports/services"
	"github.com/SscSPs/lease_management_app/internal/platform/config"
	"github.com/SscSPs/lease_management_app/internal/utils"
)

// tokenService implements the TokenSvcFacade for handling JWT access tokens.
type tokenService struct {
	BaseService
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

// GenerateAccessToken creates a new JWT access token for the given user.
// The token carries the user's role so authorization needs no lookup.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	accessToken, expiresAt, err := utils.GenerateJWT(user.UserID, string(user.Role), s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.String("user_id", user.UserID))
		return "", time.Time{}, err
	}
	return accessToken, expiresAt, nil
}
