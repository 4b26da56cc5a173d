package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"medcrm/models"
	"medcrm/services/appointment"
	"medcrm/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler exposes booking endpoints.
type AppointmentHandler struct {
	AppointmentService appointment.AppointmentService
}

func appointmentErrorStatus(err error) int {
	switch {
	case errors.Is(err, appointment.ErrSlotUnavailable):
		return http.StatusConflict
	case errors.Is(err, appointment.ErrInvalidTransition):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// CreateAppointmentHandler handles POST /appointments.
func (h *AppointmentHandler) CreateAppointmentHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req models.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid appointment request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	appt, err := h.AppointmentService.CreateAppointment(req)
	if err != nil {
		logger.Error("Failed to create appointment", zap.Error(err))
		c.JSON(appointmentErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// GetAppointmentByIDHandler handles GET /appointments/:id.
func (h *AppointmentHandler) GetAppointmentByIDHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	appt, err := h.AppointmentService.GetAppointmentByID(id)
	if err != nil {
		logger.Error("Appointment not found", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appt)
}

// ListAppointmentsHandler handles GET /appointments with optional doctor_id,
// date, status and limit query parameters.
func (h *AppointmentHandler) ListAppointmentsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	filter := models.AppointmentFilter{
		DoctorID: c.Query("doctor_id"),
		Date:     c.Query("date"),
		Status:   c.Query("status"),
	}
	if v := c.Query("limit"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		filter.Limit = n
	}

	appts, err := h.AppointmentService.ListAppointments(filter)
	if err != nil {
		logger.Error("Failed to list appointments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// UpdateAppointmentStatusHandler handles PUT /appointments/:id/status.
// Body: {"status": "confirmed"}.
func (h *AppointmentHandler) UpdateAppointmentStatusHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	appt, err := h.AppointmentService.UpdateStatus(id, req.Status)
	if err != nil {
		logger.Error("Failed to update appointment status", zap.String("id", id), zap.Error(err))
		c.JSON(appointmentErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appt)
}

// RescheduleAppointmentHandler handles PUT /appointments/:id/schedule.
// Body: {"date": "YYYY-MM-DD", "start": "HH:MM", "end": "HH:MM"}.
func (h *AppointmentHandler) RescheduleAppointmentHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	var req struct {
		Date  string `json:"date" binding:"required"`
		Start string `json:"start" binding:"required"`
		End   string `json:"end" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	appt, err := h.AppointmentService.Reschedule(id, req.Date, req.Start, req.End)
	if err != nil {
		logger.Error("Failed to reschedule appointment", zap.String("id", id), zap.Error(err))
		c.JSON(appointmentErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appt)
}

// DeleteAppointmentHandler handles DELETE /appointments/:id.
func (h *AppointmentHandler) DeleteAppointmentHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	if err := h.AppointmentService.DeleteAppointment(id); err != nil {
		logger.Error("Failed to delete appointment", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted"})
}
