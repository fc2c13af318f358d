package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"worktrack/internal/auth"
	"worktrack/internal/logger"
	"worktrack/internal/model"
	"worktrack/internal/service"
)

type AuthHandler struct {
	auth   *service.AuthService
	tokens *auth.TokenService
	secure bool
}

func NewAuthHandler(authSvc *service.AuthService, tokens *auth.TokenService, secure bool) *AuthHandler {
	return &AuthHandler{auth: authSvc, tokens: tokens, secure: secure}
}

// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	u, err := h.auth.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		logger.Warn("login.failed", "email", req.Email)
		fail(c, err)
		return
	}

	token, err := h.tokens.Sign(u)
	if err != nil {
		fail(c, err)
		return
	}
	auth.SetCookie(c, token, h.secure)

	logger.Info("login.ok", "uid", u.ID, "name", u.FullName)
	c.JSON(http.StatusOK, gin.H{
		"id":       u.ID,
		"email":    u.Email,
		"fullName": u.FullName,
		"roleId":   u.RoleID,
	})
}

// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	u, err := h.auth.Register(c.Request.Context(), req.FullName, req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}

	// new accounts are logged in right away
	token, err := h.tokens.Sign(u)
	if err != nil {
		fail(c, err)
		return
	}
	auth.SetCookie(c, token, h.secure)

	logger.Info("register.ok", "uid", u.ID, "email", u.Email)
	c.JSON(http.StatusCreated, gin.H{"user": u})
}

// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	auth.ClearCookie(c, h.secure)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GET /api/auth/me
// Always 200; an unauthenticated or stale session is a null user, not an
// error, so pages can render their signed-out state without special-casing.
func (h *AuthHandler) Me(c *gin.Context) {
	token, err := c.Cookie(auth.CookieName)
	if err != nil || token == "" {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}
	claims, err := h.tokens.Verify(token)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}
	u, err := h.auth.CurrentUser(c.Request.Context(), claims.UserID())
	if err != nil || u == nil {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u})
}
