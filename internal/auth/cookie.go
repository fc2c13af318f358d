package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetCookie stores the token in the session cookie: HttpOnly, SameSite=Lax,
// whole-application path, Secure only in production.
func SetCookie(c *gin.Context, token string, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, int(TokenValidity.Seconds()), "/", "", secure, true)
}

// ClearCookie instructs the client to discard the session cookie by issuing
// an already-expired cookie with the same name and path.
func ClearCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", secure, true)
}
