package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	contentRepo "github.com/rkritzar39/calebsportfolio-sub000/database/repository/content"
	"github.com/rkritzar39/calebsportfolio-sub000/models"
	"github.com/rkritzar39/calebsportfolio-sub000/services/content"
)

// ContentHandler serves the published collections: shoutouts, social
// links, the profile card and the legislation tracker.
type ContentHandler struct {
	ContentSvc content.ContentService
}

// NewContentHandler creates a ContentHandler instance.
func NewContentHandler(svc content.ContentService) *ContentHandler {
	return &ContentHandler{ContentSvc: svc}
}

func writeContentError(c *gin.Context, logger *zap.Logger, action string, err error) {
	var verr content.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
	case errors.Is(err, contentRepo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	default:
		logger.Error(action, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": action})
	}
}

// ListShoutoutsHandler returns shoutouts, optionally filtered by platform.
func (h *ContentHandler) ListShoutoutsHandler(c *gin.Context) {
	logger := getLogger(c)
	platform := c.Query("platform")

	shoutouts, err := h.ContentSvc.ListShoutouts(c.Request.Context(), platform)
	if err != nil {
		writeContentError(c, logger, "Failed to list shoutouts", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"shoutouts": shoutouts})
}

// CreateShoutoutHandler adds a shoutout.
func (h *ContentHandler) CreateShoutoutHandler(c *gin.Context) {
	logger := getLogger(c)
	var s models.Shoutout
	if err := c.ShouldBindJSON(&s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	id, err := h.ContentSvc.CreateShoutout(c.Request.Context(), s)
	if err != nil {
		writeContentError(c, logger, "Failed to create shoutout", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateShoutoutHandler replaces a shoutout by id.
func (h *ContentHandler) UpdateShoutoutHandler(c *gin.Context) {
	logger := getLogger(c)
	var s models.Shoutout
	if err := c.ShouldBindJSON(&s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	s.ID = c.Param("id")
	if err := h.ContentSvc.UpdateShoutout(c.Request.Context(), s); err != nil {
		writeContentError(c, logger, "Failed to update shoutout", err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// DeleteShoutoutHandler removes a shoutout by id.
func (h *ContentHandler) DeleteShoutoutHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")
	if err := h.ContentSvc.DeleteShoutout(c.Request.Context(), id); err != nil {
		writeContentError(c, logger, "Failed to delete shoutout", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// ListLinksHandler returns the social link collection.
func (h *ContentHandler) ListLinksHandler(c *gin.Context) {
	logger := getLogger(c)
	links, err := h.ContentSvc.ListLinks(c.Request.Context())
	if err != nil {
		writeContentError(c, logger, "Failed to list links", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"links": links})
}

// CreateLinkHandler adds a social link.
func (h *ContentHandler) CreateLinkHandler(c *gin.Context) {
	logger := getLogger(c)
	var l models.SocialLink
	if err := c.ShouldBindJSON(&l); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	id, err := h.ContentSvc.CreateLink(c.Request.Context(), l)
	if err != nil {
		writeContentError(c, logger, "Failed to create link", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateLinkHandler replaces a social link by id.
func (h *ContentHandler) UpdateLinkHandler(c *gin.Context) {
	logger := getLogger(c)
	var l models.SocialLink
	if err := c.ShouldBindJSON(&l); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	l.ID = c.Param("id")
	if err := h.ContentSvc.UpdateLink(c.Request.Context(), l); err != nil {
		writeContentError(c, logger, "Failed to update link", err)
		return
	}
	c.JSON(http.StatusOK, l)
}

// DeleteLinkHandler removes a social link by id.
func (h *ContentHandler) DeleteLinkHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")
	if err := h.ContentSvc.DeleteLink(c.Request.Context(), id); err != nil {
		writeContentError(c, logger, "Failed to delete link", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// GetProfileHandler returns the profile card.
func (h *ContentHandler) GetProfileHandler(c *gin.Context) {
	logger := getLogger(c)
	profile, err := h.ContentSvc.GetProfile(c.Request.Context())
	if err != nil {
		writeContentError(c, logger, "Failed to fetch profile", err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// SaveProfileHandler replaces the profile card.
func (h *ContentHandler) SaveProfileHandler(c *gin.Context) {
	logger := getLogger(c)
	var p models.Profile
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if err := h.ContentSvc.SaveProfile(c.Request.Context(), p); err != nil {
		writeContentError(c, logger, "Failed to save profile", err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// ListLegislationHandler returns the legislation tracker entries.
func (h *ContentHandler) ListLegislationHandler(c *gin.Context) {
	logger := getLogger(c)
	items, err := h.ContentSvc.ListLegislation(c.Request.Context())
	if err != nil {
		writeContentError(c, logger, "Failed to list legislation", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"legislation": items})
}

// CreateLegislationHandler adds a tracker entry.
func (h *ContentHandler) CreateLegislationHandler(c *gin.Context) {
	logger := getLogger(c)
	var item models.LegislationItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	id, err := h.ContentSvc.CreateLegislation(c.Request.Context(), item)
	if err != nil {
		writeContentError(c, logger, "Failed to create legislation entry", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateLegislationHandler replaces a tracker entry by id.
func (h *ContentHandler) UpdateLegislationHandler(c *gin.Context) {
	logger := getLogger(c)
	var item models.LegislationItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	item.ID = c.Param("id")
	if err := h.ContentSvc.UpdateLegislation(c.Request.Context(), item); err != nil {
		writeContentError(c, logger, "Failed to update legislation entry", err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteLegislationHandler removes a tracker entry by id.
func (h *ContentHandler) DeleteLegislationHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")
	if err := h.ContentSvc.DeleteLegislation(c.Request.Context(), id); err != nil {
		writeContentError(c, logger, "Failed to delete legislation entry", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
