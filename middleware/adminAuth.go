package middleware

import (
	"net/http"

	"medcrm/models"

	"github.com/gin-gonic/gin"
)

// AdminOnlyMiddleware gates routes behind the admin role. It must run after
// JWTAuthMiddleware, which sets accountRole in the context.
func AdminOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("accountRole") != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}
