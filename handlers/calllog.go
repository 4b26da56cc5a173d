package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"medcrm/models"
	"medcrm/services/calllog"
	"medcrm/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CallLogHandler exposes call history endpoints.
type CallLogHandler struct {
	CallLogService calllog.CallLogService
}

// IngestCallLogHandler handles POST /call-logs. The telephony webhook posts
// here when a call ends.
func (h *CallLogHandler) IngestCallLogHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req models.IngestCallLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid call log payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	log, err := h.CallLogService.Ingest(req)
	if err != nil {
		if errors.Is(err, calllog.ErrInvalidCallStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to ingest call log", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, log)
}

// GetCallLogByIDHandler handles GET /call-logs/:id.
func (h *CallLogHandler) GetCallLogByIDHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	log, err := h.CallLogService.GetCallLogByID(id)
	if err != nil {
		logger.Error("Call log not found", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, log)
}

// ListCallLogsHandler handles GET /call-logs with optional agent_id, status,
// from, to (RFC 3339) and limit query parameters.
func (h *CallLogHandler) ListCallLogsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	filter := models.CallLogFilter{
		AgentID: c.Query("agent_id"),
		Status:  c.Query("status"),
	}
	if v := c.Query("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from timestamp: " + err.Error()})
			return
		}
		filter.From = t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to timestamp: " + err.Error()})
			return
		}
		filter.To = t
	}
	if v := c.Query("limit"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		filter.Limit = n
	}

	logs, err := h.CallLogService.ListCallLogs(filter)
	if err != nil {
		logger.Error("Failed to list call logs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"call_logs": logs})
}

// DeleteCallLogHandler handles DELETE /call-logs/:id.
func (h *CallLogHandler) DeleteCallLogHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	if err := h.CallLogService.DeleteCallLog(id); err != nil {
		logger.Error("Failed to delete call log", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Call log deleted"})
}
