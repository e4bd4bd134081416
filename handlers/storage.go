// File: handlers/storage.go
package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"letslink/middleware"
	"letslink/models"
	"letslink/services/storage"
	user "letslink/services/user"
	"letslink/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StorageHandler handles avatar uploads.
type StorageHandler struct {
	StorageSvc  storage.StorageService
	UserService user.UserService
}

// NewStorageHandler creates a new StorageHandler instance.
func NewStorageHandler(svc storage.StorageService, userSvc user.UserService) *StorageHandler {
	return &StorageHandler{
		StorageSvc:  svc,
		UserService: userSvc,
	}
}

// UploadAvatarHandler handles POST /api/users/me/avatar. The uploaded image
// is stored under the avatars folder and the resulting URL is written to the
// user's profile.
func (h *StorageHandler) UploadAvatarHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID := middleware.AuthUserID(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
		return
	}

	tempDir := os.TempDir()
	tempFilePath := filepath.Join(tempDir, fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "detail": err.Error()})
		return
	}
	defer os.Remove(tempFilePath)

	publicID, err := h.StorageSvc.UploadFile(c, tempFilePath, "avatars")
	if err != nil {
		logger.Error("Avatar upload failed", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload file", "detail": err.Error()})
		return
	}

	avatarURL, err := h.StorageSvc.GetDownloadURL(publicID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to construct download URL", "detail": err.Error()})
		return
	}

	updated, err := h.UserService.UpdateProfile(userID, models.UserUpdateRequest{AvatarURL: avatarURL})
	if err != nil {
		logger.Error("Failed to store avatar URL", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "avatar uploaded successfully",
		"avatarUrl": avatarURL,
		"user":      updated,
	})
}
