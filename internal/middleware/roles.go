package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/timecove/timesheet-backend/internal/core/domain"
)

// RequireRole creates a Gin middleware that allows only callers whose token
// role is in the allowed set. It must run after AuthMiddleware.
func RequireRole(allowed ...domain.UserRole) gin.HandlerFunc {
	allowedSet := make(map[domain.UserRole]bool, len(allowed))
	for _, r := range allowed {
		allowedSet[r] = true
	}

	return func(c *gin.Context) {
		role, ok := GetUserRoleFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		if !allowedSet[role] {
			GetLoggerFromCtx(c.Request.Context()).Warn("Role not allowed for route", "role", string(role))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}
		c.Next()
	}
}
