package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"eventparadise/services/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// allowedFolders defines the permitted upload destinations.
var allowedFolders = map[string]bool{
	"banners": true,
	"photos":  true,
}

// StorageHandler serves file uploads for event media.
type StorageHandler struct {
	Storage storage.StorageService
}

func NewStorageHandler(svc storage.StorageService) *StorageHandler {
	return &StorageHandler{Storage: svc}
}

// Upload stores a multipart file in the given folder and returns its public
// ID and delivery URL.
func (h *StorageHandler) Upload(c *gin.Context) {
	logger := getLogger(c)

	if h.Storage == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "File storage is not configured"})
		return
	}

	folder := c.Param("folder")
	if !allowedFolders[folder] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid folder; allowed values are 'banners' and 'photos'"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File not provided"})
		return
	}

	tempPath := filepath.Join(os.TempDir(), filepath.Base(fileHeader.Filename))
	if err := c.SaveUploadedFile(fileHeader, tempPath); err != nil {
		logger.Error("Failed to buffer upload", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
		return
	}
	defer os.Remove(tempPath)

	ctx := c.Request.Context()
	publicID, err := h.Storage.UploadFile(ctx, tempPath, folder)
	if err != nil {
		logger.Error("Failed to upload file", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Upload failed"})
		return
	}

	url, err := h.Storage.GetDownloadURL(ctx, publicID)
	if err != nil {
		logger.Warn("Failed to resolve download URL", zap.String("publicId", publicID), zap.Error(err))
	}

	c.JSON(http.StatusCreated, gin.H{"publicId": publicID, "url": url})
}

// Delete removes an uploaded file by its public ID.
func (h *StorageHandler) Delete(c *gin.Context) {
	logger := getLogger(c)

	if h.Storage == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "File storage is not configured"})
		return
	}

	publicID := c.Param("publicId")
	if err := h.Storage.DeleteFile(c.Request.Context(), publicID); err != nil {
		logger.Error("Failed to delete file", zap.String("publicId", publicID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "File deleted"})
}
