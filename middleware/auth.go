// middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	accountRepo "medcrm/database/repository/account"
	"medcrm/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware authenticates dashboard requests. It validates the bearer
// token, then resolves the account from the Redis session cache and falls
// back to the token-hash lookup in Mongo on a cache miss.
func JWTAuthMiddleware(accounts accountRepo.AccountRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		// Validate the token signature and expiration.
		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		accountID, err := utils.ExtractIDFromToken(tokenString)
		if err == nil && utils.AuthCacheClient != nil {
			if session, err := utils.GetAuthSession(utils.AuthCacheClient, accountID); err == nil {
				c.Set("accountID", session.AccountID)
				c.Set("accountRole", session.Role)
				c.Next()
				return
			}
		}

		// Cache miss: compare the token hash against the stored session.
		computedHash := utils.HashToken(tokenString)
		acct, err := accounts.GetByTokenHash(computedHash)
		if err != nil || acct == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token revoked or account not found"})
			return
		}

		c.Set("accountID", acct.ID)
		c.Set("accountRole", acct.Role)
		c.Next()
	}
}
