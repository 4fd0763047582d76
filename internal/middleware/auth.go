package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AncyStar/vehicle-rental-backend/internal/service"
)

const (
	contextUserID  = "userID"
	contextIsAdmin = "isAdmin"
)

// AuthMiddleware returns middleware that verifies the Bearer token and stores
// the authenticated identity on the request context. Handlers downstream
// trust these values and perform no credential checks of their own.
func AuthMiddleware(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		claims, err := authService.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(contextUserID, claims.Subject)
		c.Set(contextIsAdmin, claims.IsAdmin())
		c.Next()
	}
}

// AdminOnly returns middleware that rejects non-admin callers. Must run after
// AuthMiddleware.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAdmin(c) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated user's ID, or "" when unauthenticated.
func UserID(c *gin.Context) string {
	return c.GetString(contextUserID)
}

// IsAdmin reports whether the authenticated user is an administrator.
func IsAdmin(c *gin.Context) bool {
	return c.GetBool(contextIsAdmin)
}
