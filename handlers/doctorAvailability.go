// File: handlers/doctorAvailability.go
package handlers

import (
	"net/http"

	"medcrm/models"
	"medcrm/services/doctor"
	"medcrm/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// bindDay resolves the :day path parameter into a weekly-schedule key.
func bindDay(c *gin.Context) (models.WeekdayKey, bool) {
	day, ok := doctor.ParseWeekday(c.Param("day"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown weekday: " + c.Param("day")})
		return "", false
	}
	return day, true
}

// ToggleDayHandler handles PUT /doctors/:id/availability/:day.
// Body: {"enabled": bool}.
func (h *DoctorHandler) ToggleDayHandler(c *gin.Context) {
	logger := utils.GetLogger()
	day, ok := bindDay(c)
	if !ok {
		return
	}
	var req struct {
		Enabled bool `json:"enabled"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	doc, err := h.DoctorService.SetDayEnabled(c.Param("id"), day, req.Enabled)
	if err != nil {
		logger.Error("Failed to toggle day", zap.String("day", string(day)), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, doc)
}

// AddSlotHandler handles POST /doctors/:id/availability/:day/slots.
func (h *DoctorHandler) AddSlotHandler(c *gin.Context) {
	logger := utils.GetLogger()
	day, ok := bindDay(c)
	if !ok {
		return
	}
	doc, err := h.DoctorService.AddSlot(c.Param("id"), day)
	if err != nil {
		logger.Error("Failed to add time slot", zap.String("day", string(day)), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, doc)
}

// UpdateSlotHandler handles PUT /doctors/:id/availability/:day/slots/:slotId.
func (h *DoctorHandler) UpdateSlotHandler(c *gin.Context) {
	logger := utils.GetLogger()
	day, ok := bindDay(c)
	if !ok {
		return
	}
	var req models.UpdateTimeSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	doc, err := h.DoctorService.UpdateSlot(c.Param("id"), day, c.Param("slotId"), req.Field, req.Value)
	if err != nil {
		logger.Error("Failed to update time slot", zap.String("slotId", c.Param("slotId")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, doc)
}

// RemoveSlotHandler handles DELETE /doctors/:id/availability/:day/slots/:slotId.
func (h *DoctorHandler) RemoveSlotHandler(c *gin.Context) {
	logger := utils.GetLogger()
	day, ok := bindDay(c)
	if !ok {
		return
	}
	doc, err := h.DoctorService.RemoveSlot(c.Param("id"), day, c.Param("slotId"))
	if err != nil {
		logger.Error("Failed to remove time slot", zap.String("slotId", c.Param("slotId")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, doc)
}

// AddOverrideHandler handles POST /doctors/:id/overrides.
func (h *DoctorHandler) AddOverrideHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req models.AddDateOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	doc, err := h.DoctorService.AddOverride(c.Param("id"), req)
	if err != nil {
		logger.Error("Failed to add date override", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, doc)
}

// UpdateOverrideHandler handles PUT /doctors/:id/overrides/:overrideId.
func (h *DoctorHandler) UpdateOverrideHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var patch models.DateOverridePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	doc, err := h.DoctorService.UpdateOverride(c.Param("id"), c.Param("overrideId"), patch)
	if err != nil {
		logger.Error("Failed to update date override", zap.String("overrideId", c.Param("overrideId")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, doc)
}

// RemoveOverrideHandler handles DELETE /doctors/:id/overrides/:overrideId.
func (h *DoctorHandler) RemoveOverrideHandler(c *gin.Context) {
	logger := utils.GetLogger()
	doc, err := h.DoctorService.RemoveOverride(c.Param("id"), c.Param("overrideId"))
	if err != nil {
		logger.Error("Failed to remove date override", zap.String("overrideId", c.Param("overrideId")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, doc)
}
