package middleware

import (
	"github.com/SscSPs/lease_management_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// userIDKey and roleKey hold the authenticated principal in the request context.
const (
	userIDKey = contextKey("userID")
	roleKey   = contextKey("role")
)

// GetUserIDFromContext retrieves the authenticated user ID from the request context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// GetActorFromContext returns the authenticated caller as a domain.Actor.
func GetActorFromContext(c *gin.Context) (domain.Actor, bool) {
	userID, ok := GetUserIDFromContext(c)
	if !ok {
		return domain.Actor{}, false
	}
	role, _ := c.Request.Context().Value(roleKey).(domain.UserRole)
	return domain.Actor{UserID: userID, Role: role}, true
}
