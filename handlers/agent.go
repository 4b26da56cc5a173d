package handlers

import (
	"net/http"

	"medcrm/models"
	"medcrm/services/agent"
	"medcrm/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AgentHandler exposes voice-agent configuration endpoints.
type AgentHandler struct {
	AgentService agent.AgentService
}

// CreateAgentHandler handles POST /agents.
func (h *AgentHandler) CreateAgentHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req models.CreateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid agent creation request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	a, err := h.AgentService.CreateAgent(req)
	if err != nil {
		logger.Error("Failed to create agent", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, a)
}

// GetAgentByIDHandler handles GET /agents/:id.
func (h *AgentHandler) GetAgentByIDHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	a, err := h.AgentService.GetAgentByID(id)
	if err != nil {
		logger.Error("Agent not found", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, a)
}

// ListAgentsHandler handles GET /agents.
func (h *AgentHandler) ListAgentsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	agents, err := h.AgentService.ListAgents()
	if err != nil {
		logger.Error("Failed to list agents", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"agents": agents})
}

// UpdateAgentHandler handles PUT /agents/:id.
func (h *AgentHandler) UpdateAgentHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		logger.Error("Invalid agent update request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	a, err := h.AgentService.UpdateAgent(id, updates)
	if err != nil {
		logger.Error("Failed to update agent", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, a)
}

// DeleteAgentHandler handles DELETE /agents/:id.
func (h *AgentHandler) DeleteAgentHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	if err := h.AgentService.DeleteAgent(id); err != nil {
		logger.Error("Failed to delete agent", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Agent deleted"})
}

// ListScriptVariablesHandler handles GET /agents/script-variables?field=greeting.
// Returns the placeholder catalog the script editor offers for one field.
func (h *AgentHandler) ListScriptVariablesHandler(c *gin.Context) {
	field := c.Query("field")
	vars := agent.VariablesForField(field)
	if vars == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown script field: " + field})
		return
	}
	c.JSON(http.StatusOK, gin.H{"field": field, "variables": vars})
}

// InsertScriptVariableHandler handles POST /agents/:id/script/insert-variable.
func (h *AgentHandler) InsertScriptVariableHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	var req models.InsertVariableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid insert-variable request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	a, result, err := h.AgentService.InsertScriptVariable(id, req)
	if err != nil {
		logger.Error("Failed to insert script variable", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"agent":     a,
		"template":  result.Template,
		"caret_pos": result.CaretPos,
	})
}

// PreviewScriptHandler handles POST /agents/:id/script/preview.
// Body: {"field": "greeting"}.
func (h *AgentHandler) PreviewScriptHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	var req struct {
		Field string `json:"field" binding:"required,oneof=greeting service_description availability"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	preview, err := h.AgentService.Preview(c.Request.Context(), id, req.Field)
	if err != nil {
		logger.Error("Failed to preview script", zap.String("id", id), zap.String("field", req.Field), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"field": req.Field, "preview": preview})
}
