package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nahid-mahmud/diacare-server/internal/utils"
)

// ClaimedEmailKey is the context key under which RequireToken stores the
// email carried by a verified token.
const ClaimedEmailKey = "claimedEmail"

// AdminChecker reports whether the user registered under email holds the
// admin role. The lookup hits the database on every call, it is not cached.
type AdminChecker func(ctx context.Context, email string) (bool, error)

// RequireToken rejects requests without a valid "Bearer <token>" header and
// stashes the claimed email in the request context for downstream guards.
func RequireToken(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ParseToken(tokenStr, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}

		email, _ := claims["email"].(string)
		c.Set(ClaimedEmailKey, email)
		c.Next()
	}
}

// RequireAdmin must run after RequireToken.
func RequireAdmin(isAdmin AdminChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(ClaimedEmailKey)
		ok, err := isAdmin(c.Request.Context(), email)
		if err != nil || !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}
		c.Next()
	}
}

// RequireSelf must run after RequireToken. The named path parameter has to
// match the claimed email, so a non-admin can only query their own record.
func RequireSelf(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Param(param) != c.GetString(ClaimedEmailKey) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}
		c.Next()
	}
}
