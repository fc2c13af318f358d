package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"worktrack/internal/middleware"
	"worktrack/internal/model"
	"worktrack/internal/service"
)

// AdminHandler serves the admin/manager endpoints. Role checks here go
// through the users table, not the token: a forged role claim gets past the
// gatekeeper's redirect at most, never past these handlers.
type AdminHandler struct {
	dir        *service.DirectoryService
	activities *service.ActivityService
}

func NewAdminHandler(dir *service.DirectoryService, activities *service.ActivityService) *AdminHandler {
	return &AdminHandler{dir: dir, activities: activities}
}

func (h *AdminHandler) callerHasRole(c *gin.Context, roles ...int) bool {
	role, err := h.dir.RoleOf(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return false
	}
	for _, r := range roles {
		if role == r {
			return true
		}
	}
	c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	return false
}

// GET /api/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	if !h.callerHasRole(c, model.RoleAdmin) {
		return
	}
	users, err := h.dir.ListUsers(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// POST /api/admin/users
func (h *AdminHandler) CreateUser(c *gin.Context) {
	if !h.callerHasRole(c, model.RoleAdmin) {
		return
	}
	var req model.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	u, err := h.dir.CreateUser(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": u})
}

// PATCH /api/admin/users  body: {"userId":..,"roleId":..}
func (h *AdminHandler) ChangeRole(c *gin.Context) {
	if !h.callerHasRole(c, model.RoleAdmin) {
		return
	}
	var req model.ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := h.dir.ChangeRole(c.Request.Context(), req.UserID, req.RoleID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// DELETE /api/admin/users  body: {"userId":..}
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	if !h.callerHasRole(c, model.RoleAdmin) {
		return
	}
	var req model.DeleteUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := h.dir.DeleteUser(c.Request.Context(), req.UserID, middleware.UserID(c)); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GET /api/admin/activities?userId=3&date=YYYY-MM-DD
// Managers are admitted for any target user, not only their own team; the
// team page is where manager access narrows.
func (h *AdminHandler) ListActivities(c *gin.Context) {
	if !h.callerHasRole(c, model.RoleAdmin, model.RoleManager) {
		return
	}
	userID, _ := strconv.Atoi(c.Query("userId"))
	date := strings.TrimSpace(c.Query("date"))
	if userID == 0 || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId and date are required"})
		return
	}
	rows, err := h.activities.List(c.Request.Context(), userID, date)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"activities": rows})
}

// POST /api/admin/activities
func (h *AdminHandler) CreateActivity(c *gin.Context) {
	if !h.callerHasRole(c, model.RoleAdmin, model.RoleManager) {
		return
	}
	var req model.AdminCreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.UserID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}
	a, err := h.activities.Create(c.Request.Context(), req.UserID, req.CreateActivityRequest)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"activity": a})
}

// PATCH /api/admin/activities  body: {"id":.., fields...}
func (h *AdminHandler) UpdateActivity(c *gin.Context) {
	if !h.callerHasRole(c, model.RoleAdmin, model.RoleManager) {
		return
	}
	var req model.AdminUpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.ID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}
	a, err := h.activities.Update(c.Request.Context(), req.ID, req.UpdateActivityPatch)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"activity": a})
}

// DELETE /api/admin/activities  body: {"ids": [..]}
func (h *AdminHandler) DeleteActivities(c *gin.Context) {
	if !h.callerHasRole(c, model.RoleAdmin, model.RoleManager) {
		return
	}
	var req model.DeleteActivitiesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := h.activities.Delete(c.Request.Context(), req.IDs); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
