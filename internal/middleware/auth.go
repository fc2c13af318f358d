package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"worktrack/internal/auth"
)

// RequireAuth is the authoritative check: full signature verification of the
// session cookie. It sets user identity in the gin context for handlers.
// Role-gated handlers must still re-check the caller's role against the
// users table; the token's role claim only drives routing.
func RequireAuth(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(auth.CookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		claims, err := tokens.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set("user_id", claims.UserID())
		c.Set("user_email", claims.Email)
		c.Set("user_name", claims.Name)
		c.Set("role_id", claims.RoleID)
		c.Next()
	}
}

// UserID returns the authenticated user's id set by RequireAuth.
func UserID(c *gin.Context) int {
	return c.GetInt("user_id")
}
