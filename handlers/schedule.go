package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	scheduleRepo "github.com/rkritzar39/calebsportfolio-sub000/database/repository/schedule"
	"github.com/rkritzar39/calebsportfolio-sub000/models"
	"github.com/rkritzar39/calebsportfolio-sub000/services/status"
)

// ScheduleHandler serves the admin business-hours endpoints. Every
// write invalidates the cached schedule snapshot so the next public
// read resolves against fresh rules.
type ScheduleHandler struct {
	Repo      scheduleRepo.ScheduleRepository
	StatusSvc status.StatusService
}

// NewScheduleHandler creates a ScheduleHandler instance.
func NewScheduleHandler(repo scheduleRepo.ScheduleRepository, svc status.StatusService) *ScheduleHandler {
	return &ScheduleHandler{Repo: repo, StatusSvc: svc}
}

// GetBusinessConfigHandler returns the stored schedule configuration.
func (h *ScheduleHandler) GetBusinessConfigHandler(c *gin.Context) {
	logger := getLogger(c)
	cfg, err := h.Repo.GetBusinessConfig(c.Request.Context())
	if err != nil {
		logger.Error("Failed to fetch business config", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch configuration"})
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// UpdateBusinessConfigHandler replaces the whole schedule configuration.
func (h *ScheduleHandler) UpdateBusinessConfigHandler(c *gin.Context) {
	logger := getLogger(c)
	var cfg models.BusinessConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		logger.Error("Invalid business config payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	cfg.Normalize()
	if err := h.Repo.SaveBusinessConfig(c.Request.Context(), cfg); err != nil {
		logger.Error("Failed to save business config", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save configuration"})
		return
	}
	h.StatusSvc.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, cfg)
}

// SetOverrideHandler updates just the manual status override.
func (h *ScheduleHandler) SetOverrideHandler(c *gin.Context) {
	logger := getLogger(c)
	var req struct {
		Override models.OverrideStatus `json:"statusOverride"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid override payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if !req.Override.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown override value"})
		return
	}
	if err := h.Repo.SetOverride(c.Request.Context(), req.Override); err != nil {
		logger.Error("Failed to set override", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set override"})
		return
	}
	h.StatusSvc.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"statusOverride": req.Override})
}

// AddHolidayHandler appends a holiday rule.
func (h *ScheduleHandler) AddHolidayHandler(c *gin.Context) {
	logger := getLogger(c)
	var rule models.HolidayRule
	if err := c.ShouldBindJSON(&rule); err != nil {
		logger.Error("Invalid holiday payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	id, err := h.Repo.AddHoliday(c.Request.Context(), rule)
	if err != nil {
		logger.Error("Failed to add holiday", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add holiday"})
		return
	}
	h.StatusSvc.Invalidate(c.Request.Context())
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateHolidayHandler replaces a holiday rule by id.
func (h *ScheduleHandler) UpdateHolidayHandler(c *gin.Context) {
	logger := getLogger(c)
	var rule models.HolidayRule
	if err := c.ShouldBindJSON(&rule); err != nil {
		logger.Error("Invalid holiday payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	rule.ID = c.Param("id")
	if err := h.Repo.UpdateHoliday(c.Request.Context(), rule); err != nil {
		if errors.Is(err, scheduleRepo.ErrRuleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Holiday not found"})
			return
		}
		logger.Error("Failed to update holiday", zap.String("id", rule.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update holiday"})
		return
	}
	h.StatusSvc.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, rule)
}

// DeleteHolidayHandler removes a holiday rule by id.
func (h *ScheduleHandler) DeleteHolidayHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")
	if err := h.Repo.DeleteHoliday(c.Request.Context(), id); err != nil {
		if errors.Is(err, scheduleRepo.ErrRuleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Holiday not found"})
			return
		}
		logger.Error("Failed to delete holiday", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete holiday"})
		return
	}
	h.StatusSvc.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// AddTemporaryHandler appends a temporary date-range rule.
func (h *ScheduleHandler) AddTemporaryHandler(c *gin.Context) {
	logger := getLogger(c)
	var rule models.TemporaryRule
	if err := c.ShouldBindJSON(&rule); err != nil {
		logger.Error("Invalid temporary rule payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	id, err := h.Repo.AddTemporary(c.Request.Context(), rule)
	if err != nil {
		logger.Error("Failed to add temporary rule", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add temporary rule"})
		return
	}
	h.StatusSvc.Invalidate(c.Request.Context())
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateTemporaryHandler replaces a temporary rule by id.
func (h *ScheduleHandler) UpdateTemporaryHandler(c *gin.Context) {
	logger := getLogger(c)
	var rule models.TemporaryRule
	if err := c.ShouldBindJSON(&rule); err != nil {
		logger.Error("Invalid temporary rule payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	rule.ID = c.Param("id")
	if err := h.Repo.UpdateTemporary(c.Request.Context(), rule); err != nil {
		if errors.Is(err, scheduleRepo.ErrRuleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Temporary rule not found"})
			return
		}
		logger.Error("Failed to update temporary rule", zap.String("id", rule.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update temporary rule"})
		return
	}
	h.StatusSvc.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, rule)
}

// DeleteTemporaryHandler removes a temporary rule by id.
func (h *ScheduleHandler) DeleteTemporaryHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")
	if err := h.Repo.DeleteTemporary(c.Request.Context(), id); err != nil {
		if errors.Is(err, scheduleRepo.ErrRuleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Temporary rule not found"})
			return
		}
		logger.Error("Failed to delete temporary rule", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete temporary rule"})
		return
	}
	h.StatusSvc.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
