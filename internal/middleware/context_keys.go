package middleware

import (
	"context"

	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// userIDKey and isStaffKey store the authenticated identity in the request context.
const (
	userIDKey  = contextKey("userID")
	isStaffKey = contextKey("isStaff")
)

// WithActor returns a copy of ctx carrying the authenticated actor.
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	ctx = context.WithValue(ctx, userIDKey, actor.UserID)
	return context.WithValue(ctx, isStaffKey, actor.IsStaff)
}

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// GetActorFromContext returns the authenticated user and staff flag.
func GetActorFromContext(c *gin.Context) (domain.Actor, bool) {
	userID, ok := GetUserIDFromContext(c)
	if !ok {
		return domain.Actor{}, false
	}
	isStaff, _ := c.Request.Context().Value(isStaffKey).(bool)
	return domain.Actor{UserID: userID, IsStaff: isStaff}, true
}
