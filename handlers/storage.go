package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rkritzar39/calebsportfolio-sub000/services/storage"
)

// StorageHandler serves admin media uploads and public download URLs.
type StorageHandler struct {
	StorageSvc storage.StorageService
}

// NewStorageHandler creates a StorageHandler instance.
func NewStorageHandler(svc storage.StorageService) *StorageHandler {
	return &StorageHandler{StorageSvc: svc}
}

// allowedBuckets defines permitted upload folders.
var allowedBuckets = map[string]bool{
	"profile":   true,
	"shoutouts": true,
	"images":    true,
}

// UploadFileHandler stores an uploaded media file and returns its public ID.
func (h *StorageHandler) UploadFileHandler(c *gin.Context) {
	logger := getLogger(c)
	bucket := c.Param("bucket")
	if !allowedBuckets[bucket] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bucket; allowed values are 'profile', 'shoutouts' and 'images'"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), filepath.Base(fileHeader.Filename))
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		logger.Error("Failed to save uploaded file", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file"})
		return
	}
	defer os.Remove(tempFilePath)

	publicID, err := h.StorageSvc.UploadFile(c.Request.Context(), tempFilePath, "site/"+bucket)
	if err != nil {
		logger.Error("Failed to upload file", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload file"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"publicId": publicID})
}

// GetDownloadURLHandler resolves a stored asset's public URL.
func (h *StorageHandler) GetDownloadURLHandler(c *gin.Context) {
	logger := getLogger(c)
	resourceType := c.DefaultQuery("type", "image")
	publicID := c.Param("id")
	if publicID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing public id"})
		return
	}

	url, err := h.StorageSvc.GetDownloadURL(c.Request.Context(), resourceType, publicID)
	if err != nil {
		logger.Error("Failed to resolve download URL", zap.String("id", publicID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve URL"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// DeleteFileHandler removes a stored asset.
func (h *StorageHandler) DeleteFileHandler(c *gin.Context) {
	logger := getLogger(c)
	publicID := c.Param("id")
	if err := h.StorageSvc.DeleteFile(c.Request.Context(), publicID); err != nil {
		logger.Error("Failed to delete file", zap.String("id", publicID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete file"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": publicID})
}
