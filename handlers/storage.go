package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	accountRepo "beautymatch/database/repository/account"
	profileRepo "beautymatch/database/repository/profile"
	"beautymatch/models"
	"beautymatch/services/storage"
	"beautymatch/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StorageHandler handles profile image uploads.
type StorageHandler struct {
	StorageSvc storage.StorageService
	Accounts   accountRepo.AccountRepository
	Profiles   profileRepo.ProfileRepository
}

// NewStorageHandler creates a new StorageHandler instance.
func NewStorageHandler(svc storage.StorageService, accounts accountRepo.AccountRepository, profiles profileRepo.ProfileRepository) *StorageHandler {
	return &StorageHandler{StorageSvc: svc, Accounts: accounts, Profiles: profiles}
}

// UploadProfileImageHandler handles POST /api/storage/profile-image.
// The new asset becomes the account's profile image; the replaced asset
// is removed from storage best-effort.
func (h *StorageHandler) UploadProfileImageHandler(c *gin.Context) {
	logger := utils.GetLogger()

	if h.StorageSvc == nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "Storage is not configured", "")
		return
	}

	acc, err := h.Accounts.GetByID(c.GetString("userID"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to resolve account", err.Error())
		return
	}
	if acc == nil {
		utils.JSONError(c, http.StatusUnauthorized, "Account not found", "")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "File not provided", err.Error())
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save file", err.Error())
		return
	}
	defer os.Remove(tempFilePath)

	publicID, err := h.StorageSvc.UploadFile(c, tempFilePath, "profiles/images")
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to upload file", err.Error())
		return
	}

	downloadURL, err := h.StorageSvc.GetDownloadURL(c, publicID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to construct download URL", err.Error())
		return
	}

	if acc.ProfileImageID != "" {
		if err := h.StorageSvc.DeleteFile(c, acc.ProfileImageID); err != nil {
			logger.Warn("storage: failed to remove replaced image",
				zap.String("publicId", acc.ProfileImageID), zap.Error(err))
		}
	}

	acc.ProfileImage = downloadURL
	acc.ProfileImageID = publicID
	if err := h.Accounts.Update(acc); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to store profile image", err.Error())
		return
	}

	// Professionals also show the image on their public profile.
	if acc.Role == models.RoleProfessional {
		if err := h.Profiles.Merge(acc.ID, map[string]interface{}{"profileImage": downloadURL}); err != nil {
			logger.Warn("storage: failed to sync profile image",
				zap.String("id", acc.ID), zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"publicId": publicID,
		"url":      downloadURL,
	})
}
