package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"worktrack/internal/auth"
	"worktrack/internal/model"
)

// Gatekeeper runs before every handler and decides public vs protected
// access. It reads the token's role claim without verifying the signature:
// a cheap routing hint only. A forged role here lands on a page whose API
// calls all fail the authoritative checks, so nothing escalates.
func Gatekeeper() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		if isPublicPath(path) {
			c.Next()
			return
		}

		token, err := c.Cookie(auth.CookieName)
		if err != nil || token == "" {
			loc := "/login?next=" + path
			c.Redirect(http.StatusFound, loc)
			c.Abort()
			return
		}

		claims, err := auth.DecodeUnverified(token)
		roleID := 0
		if err == nil {
			roleID = claims.RoleID
		}

		if strings.HasPrefix(path, "/admin") && roleID != model.RoleAdmin {
			c.Redirect(http.StatusFound, "/forbidden")
			c.Abort()
			return
		}
		if strings.HasPrefix(path, "/team") && roleID != model.RoleManager {
			c.Redirect(http.StatusFound, "/forbidden")
			c.Abort()
			return
		}

		c.Next()
	}
}

func isPublicPath(path string) bool {
	switch path {
	case "/", "/login", "/login/admin", "/register":
		return true
	}
	if strings.HasPrefix(path, "/assets") || strings.HasPrefix(path, "/favicon.ico") {
		return true
	}
	if strings.HasPrefix(path, "/api/auth") {
		return true
	}
	if strings.HasPrefix(path, "/forbidden") {
		return true
	}
	return false
}
