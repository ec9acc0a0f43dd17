package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rkritzar39/calebsportfolio-sub000/models"
	"github.com/rkritzar39/calebsportfolio-sub000/services/settings"
)

// SettingsHandler serves the admin feature-flag record.
type SettingsHandler struct {
	SettingsSvc settings.SettingsService
}

// NewSettingsHandler creates a SettingsHandler instance.
func NewSettingsHandler(svc settings.SettingsService) *SettingsHandler {
	return &SettingsHandler{SettingsSvc: svc}
}

// GetSettingsHandler returns the current flags.
func (h *SettingsHandler) GetSettingsHandler(c *gin.Context) {
	logger := getLogger(c)
	s, err := h.SettingsSvc.Get(c.Request.Context())
	if err != nil {
		logger.Error("Failed to fetch settings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
		return
	}
	c.JSON(http.StatusOK, s)
}

// SaveSettingsHandler replaces the flag record and broadcasts the change.
func (h *SettingsHandler) SaveSettingsHandler(c *gin.Context) {
	logger := getLogger(c)
	var s models.Settings
	if err := c.ShouldBindJSON(&s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if err := h.SettingsSvc.Save(c.Request.Context(), s); err != nil {
		logger.Error("Failed to save settings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
		return
	}
	c.JSON(http.StatusOK, s)
}
