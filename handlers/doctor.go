package handlers

import (
	"net/http"

	"medcrm/models"
	"medcrm/services/doctor"
	"medcrm/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DoctorHandler exposes roster endpoints.
type DoctorHandler struct {
	DoctorService doctor.DoctorService
}

// CreateDoctorHandler handles POST /doctors.
func (h *DoctorHandler) CreateDoctorHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req models.CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid doctor creation request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	doc, err := h.DoctorService.CreateDoctor(req)
	if err != nil {
		logger.Error("Failed to create doctor", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, doc)
}

// GetDoctorByIDHandler handles GET /doctors/:id.
func (h *DoctorHandler) GetDoctorByIDHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	doc, err := h.DoctorService.GetDoctorByID(id)
	if err != nil {
		logger.Error("Doctor not found", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, doc)
}

// ListDoctorsHandler handles GET /doctors. Pass ?active=true to hide
// deactivated roster members.
func (h *DoctorHandler) ListDoctorsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	activeOnly := c.Query("active") == "true"
	doctors, err := h.DoctorService.ListDoctors(activeOnly)
	if err != nil {
		logger.Error("Failed to list doctors", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctors": doctors})
}

// UpdateDoctorHandler handles PUT /doctors/:id.
func (h *DoctorHandler) UpdateDoctorHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		logger.Error("Invalid doctor update request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	doc, err := h.DoctorService.UpdateDoctor(id, updates)
	if err != nil {
		logger.Error("Failed to update doctor", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, doc)
}

// DeleteDoctorHandler handles DELETE /doctors/:id.
func (h *DoctorHandler) DeleteDoctorHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	if err := h.DoctorService.DeleteDoctor(id); err != nil {
		logger.Error("Failed to delete doctor", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Doctor deleted"})
}

// FreeSlotsHandler handles GET /doctors/:id/free-slots?date=YYYY-MM-DD.
func (h *DoctorHandler) FreeSlotsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}
	windows, err := h.DoctorService.FreeSlots(id, date)
	if err != nil {
		logger.Error("Failed to compute free slots", zap.String("id", id), zap.String("date", date), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "free_slots": windows})
}
