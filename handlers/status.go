package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rkritzar39/calebsportfolio-sub000/services/status"
)

// StatusHandler serves the public business-hours surface.
type StatusHandler struct {
	StatusSvc status.StatusService
}

// NewStatusHandler creates a StatusHandler instance.
func NewStatusHandler(svc status.StatusService) *StatusHandler {
	return &StatusHandler{StatusSvc: svc}
}

// GetStatusHandler returns the fully resolved status page: current
// status with message, the weekly listing and upcoming closures. The
// optional tz query parameter renders times in the visitor's zone.
func (h *StatusHandler) GetStatusHandler(c *gin.Context) {
	logger := getLogger(c)
	visitorTZ := c.Query("tz")

	page, err := h.StatusSvc.GetStatusPage(c.Request.Context(), visitorTZ)
	if err != nil {
		logger.Error("Failed to resolve status page", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve status"})
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetHoursHandler returns just the weekly hours listing.
func (h *StatusHandler) GetHoursHandler(c *gin.Context) {
	logger := getLogger(c)
	visitorTZ := c.Query("tz")

	hours, err := h.StatusSvc.GetWeeklyHours(c.Request.Context(), visitorTZ)
	if err != nil {
		logger.Error("Failed to list weekly hours", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list hours"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"hours": hours})
}
