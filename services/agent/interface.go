package agent

import (
	"context"
	"fmt"

	agentRepo "medcrm/database/repository/agent"
	"medcrm/models"
)

// AgentService exposes voice-agent configuration management.
type AgentService interface {
	CreateAgent(req models.CreateAgentRequest) (*models.AgentConfig, error)
	GetAgentByID(id string) (*models.AgentConfig, error)
	ListAgents() ([]models.AgentConfig, error)
	UpdateAgent(id string, updates map[string]interface{}) (*models.AgentConfig, error)
	DeleteAgent(id string) error

	// Script editing
	InsertScriptVariable(id string, req models.InsertVariableRequest) (*models.AgentConfig, *models.InsertVariableResponse, error)

	// Preview asks the language model to speak one scripted line with sample
	// variable values filled in.
	Preview(ctx context.Context, id, field string) (string, error)
}

// DefaultAgentService is the production implementation.
type DefaultAgentService struct {
	Repo agentRepo.AgentRepository
	LLM  PreviewClient
}

// PreviewClient generates a spoken-style rendition of a script line.
type PreviewClient interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

func NewDefaultAgentService(repo agentRepo.AgentRepository, llm PreviewClient) (*DefaultAgentService, error) {
	if repo == nil {
		return nil, fmt.Errorf("agent service initialization error: repository is nil")
	}
	return &DefaultAgentService{Repo: repo, LLM: llm}, nil
}
