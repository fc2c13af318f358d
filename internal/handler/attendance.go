package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"worktrack/internal/logger"
	"worktrack/internal/middleware"
	"worktrack/internal/service"
)

type AttendanceHandler struct {
	workdays *service.WorkDayService
}

func NewAttendanceHandler(workdays *service.WorkDayService) *AttendanceHandler {
	return &AttendanceHandler{workdays: workdays}
}

// POST /api/attendance/check-in
func (h *AttendanceHandler) CheckIn(c *gin.Context) {
	uid := middleware.UserID(c)
	rec, err := h.workdays.CheckIn(c.Request.Context(), uid)
	if err != nil {
		fail(c, err)
		return
	}
	logger.Info("attendance.check_in", "uid", uid, "date", rec.WorkDate)
	c.JSON(http.StatusOK, gin.H{"record": rec})
}

// POST /api/attendance/check-out
func (h *AttendanceHandler) CheckOut(c *gin.Context) {
	uid := middleware.UserID(c)
	rec, err := h.workdays.CheckOut(c.Request.Context(), uid)
	if err != nil {
		fail(c, err)
		return
	}
	logger.Info("attendance.check_out", "uid", uid, "date", rec.WorkDate)
	c.JSON(http.StatusOK, gin.H{"record": rec})
}

// GET /api/attendance/today
func (h *AttendanceHandler) Today(c *gin.Context) {
	rec, err := h.workdays.Today(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	if rec == nil {
		c.JSON(http.StatusOK, gin.H{"record": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"record": rec})
}
