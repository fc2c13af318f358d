package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"worktrack/internal/ics"
	"worktrack/internal/middleware"
	"worktrack/internal/model"
	"worktrack/internal/service"
)

// ActivityHandler serves the self-scoped activity endpoints. The target
// user is always the verified token's subject, never client input.
type ActivityHandler struct {
	activities *service.ActivityService
}

func NewActivityHandler(activities *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activities: activities}
}

// GET /api/activities?date=YYYY-MM-DD
func (h *ActivityHandler) List(c *gin.Context) {
	date := strings.TrimSpace(c.Query("date"))
	rows, err := h.activities.List(c.Request.Context(), middleware.UserID(c), date)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"activities": rows})
}

// POST /api/activities
func (h *ActivityHandler) Create(c *gin.Context) {
	var req model.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	a, err := h.activities.Create(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"activity": a})
}

// DELETE /api/activities  body: {"ids": [..]}
func (h *ActivityHandler) Delete(c *gin.Context) {
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

// GET /api/activities/export?date=YYYY-MM-DD&ids=1,2
func (h *ActivityHandler) Export(c *gin.Context) {
	date := strings.TrimSpace(c.Query("date"))
	ids := parseIDList(c.Query("ids"))

	rows, err := h.activities.ListForExport(c.Request.Context(), middleware.UserID(c), date, ids)
	if err != nil {
		fail(c, err)
		return
	}

	doc := ics.Build(date, rows)
	filename := ics.Filename(date, len(ids) > 0)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(doc))
}

func parseIDList(raw string) []int {
	var ids []int
	for _, part := range strings.Split(raw, ",") {
		if n, err := strconv.Atoi(strings.TrimSpace(part)); err == nil && n > 0 {
			ids = append(ids, n)
		}
	}
	return ids
}
