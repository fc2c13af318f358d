package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"worktrack/internal/apperr"
	"worktrack/internal/logger"
)

// fail maps a service error onto its HTTP status. Unexpected errors are
// logged with detail and leave the server as a generic message.
func fail(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.Error("request failed", "path", c.Request.URL.Path, "err", err)
		c.JSON(status, gin.H{"error": "server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
