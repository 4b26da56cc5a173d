package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"medcrm/services/doctor"
	"medcrm/services/storage"
	"medcrm/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StorageHandler handles doctor profile photo uploads.
type StorageHandler struct {
	StorageSvc    storage.StorageService
	DoctorService doctor.DoctorService
}

// UploadDoctorPhotoHandler handles POST /doctors/:id/photo with a multipart
// "photo" field. The uploaded image replaces the doctor's profile photo and
// the previous asset is removed from storage.
func (h *StorageHandler) UploadDoctorPhotoHandler(c *gin.Context) {
	doctorID := c.Param("id")

	if h.StorageSvc == nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "media storage is not configured", "")
		return
	}

	existing, err := h.DoctorService.GetDoctorByID(doctorID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "doctor not found", err.Error())
		return
	}
	previousPublicID := existing.PhotoPublicID

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "photo file not provided", err.Error())
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save file", err.Error())
		return
	}
	defer os.Remove(tempFilePath)

	publicID, err := h.StorageSvc.UploadFile(c, tempFilePath, "doctors/photos")
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to upload photo", err.Error())
		return
	}

	url, err := h.StorageSvc.GetDownloadURL(publicID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to resolve photo URL", err.Error())
		return
	}

	doc, err := h.DoctorService.UpdateDoctor(doctorID, map[string]interface{}{
		"photo_url":       url,
		"photo_public_id": publicID,
	})
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to attach photo to doctor", err.Error())
		return
	}

	// The replaced asset is orphaned once the doctor points at the new one.
	if previousPublicID != "" && previousPublicID != publicID {
		if err := h.StorageSvc.DeleteFile(c, previousPublicID); err != nil {
			utils.GetLogger().Warn("Failed to remove replaced doctor photo",
				zap.String("doctorID", doctorID),
				zap.String("publicID", previousPublicID),
				zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, doc)
}
