package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"worktrack/internal/middleware"
	"worktrack/internal/model"
	"worktrack/internal/service"
)

type TeamHandler struct {
	dir *service.DirectoryService
}

func NewTeamHandler(dir *service.DirectoryService) *TeamHandler {
	return &TeamHandler{dir: dir}
}

// GET /api/team/users
func (h *TeamHandler) ListMembers(c *gin.Context) {
	uid := middleware.UserID(c)
	role, err := h.dir.RoleOf(c.Request.Context(), uid)
	if err != nil || role != model.RoleManager {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	members, err := h.dir.Team(c.Request.Context(), uid)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": members})
}
