package agent

import (
	"fmt"
	"time"

	"medcrm/models"
	"medcrm/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultAgentService) CreateAgent(req models.CreateAgentRequest) (*models.AgentConfig, error) {
	voice := req.Voice
	if voice == "" {
		voice = "alloy"
	}
	language := req.Language
	if language == "" {
		language = "en-US"
	}
	now := time.Now()
	agent := &models.AgentConfig{
		ID:          uuid.NewString(),
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Voice:       voice,
		Language:    language,
		Script:      req.Script,
		Enabled:     false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.Create(agent); err != nil {
		utils.GetLogger().Error("CreateAgent: insert failed", zap.Error(err))
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}
	return agent, nil
}

func (s *DefaultAgentService) GetAgentByID(id string) (*models.AgentConfig, error) {
	return s.Repo.GetByID(id)
}

func (s *DefaultAgentService) ListAgents() ([]models.AgentConfig, error) {
	return s.Repo.GetAll()
}

func (s *DefaultAgentService) UpdateAgent(id string, updates map[string]interface{}) (*models.AgentConfig, error) {
	agent, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if v, ok := updates["name"].(string); ok {
		agent.Name = v
	}
	if v, ok := updates["phone_number"].(string); ok {
		agent.PhoneNumber = v
	}
	if v, ok := updates["voice"].(string); ok {
		agent.Voice = v
	}
	if v, ok := updates["language"].(string); ok {
		agent.Language = v
	}
	if v, ok := updates["enabled"].(bool); ok {
		agent.Enabled = v
	}
	if script, ok := updates["script"].(map[string]interface{}); ok {
		if v, ok := script["greeting"].(string); ok {
			agent.Script.Greeting = v
		}
		if v, ok := script["service_description"].(string); ok {
			agent.Script.ServiceDescription = v
		}
		if v, ok := script["availability"].(string); ok {
			agent.Script.Availability = v
		}
	}
	agent.UpdatedAt = time.Now()

	if err := s.Repo.Update(agent); err != nil {
		return nil, err
	}
	return agent, nil
}

func (s *DefaultAgentService) DeleteAgent(id string) error {
	return s.Repo.Delete(id)
}

// InsertScriptVariable applies the caret splice to one script field of a
// stored agent and persists the result. The caret is clamped to the current
// template bounds first, so a stale caret from the editor cannot fault the
// splice.
func (s *DefaultAgentService) InsertScriptVariable(id string, req models.InsertVariableRequest) (*models.AgentConfig, *models.InsertVariableResponse, error) {
	agent, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}

	template := req.Template
	start, end := ClampCaret(template, req.CaretStart, req.CaretEnd)
	newTemplate, caretPos := InsertVariable(template, start, end, req.Variable)

	switch req.Field {
	case models.ScriptFieldGreeting:
		agent.Script.Greeting = newTemplate
	case models.ScriptFieldServiceDescription:
		agent.Script.ServiceDescription = newTemplate
	case models.ScriptFieldAvailability:
		agent.Script.Availability = newTemplate
	default:
		return nil, nil, fmt.Errorf("unknown script field %q", req.Field)
	}
	agent.UpdatedAt = time.Now()

	if err := s.Repo.Update(agent); err != nil {
		return nil, nil, err
	}
	return agent, &models.InsertVariableResponse{Template: newTemplate, CaretPos: caretPos}, nil
}
