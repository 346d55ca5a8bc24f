package middleware

import (
	"net/http"

	"beautymatch/models"

	"github.com/gin-gonic/gin"
)

// RequireRole gates a route group to accounts carrying the given role.
// Must run after JWTAuthMiddleware.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		val, ok := c.Get("role")
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		if roleStr, ok := val.(string); !ok || models.Role(roleStr) != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "This action is not available for your role"})
			return
		}
		c.Next()
	}
}
