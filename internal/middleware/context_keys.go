package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/timecove/timesheet-backend/internal/core/domain"
)

// userIDKey is the key used to store the authenticated user's ID in the
// request context. Using a custom type prevents collisions.
const userIDKey = contextKey("userID")

// userRoleKey is the key used to store the authenticated user's role in the
// request context.
const userRoleKey = contextKey("userRole")

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// GetUserRoleFromContext retrieves the authenticated user's role from the Gin
// context. It returns the role and a boolean indicating if it was found.
func GetUserRoleFromContext(c *gin.Context) (domain.UserRole, bool) {
	roleStr, ok := c.Request.Context().Value(userRoleKey).(string)
	if !ok {
		return "", false
	}
	role := domain.UserRole(roleStr)
	if !role.IsValid() {
		return "", false
	}
	return role, true
}
