package agentRepo

import "medcrm/models"

// AgentRepository defines methods for voice-agent configuration data access.
type AgentRepository interface {
	// GetByID retrieves an agent configuration by its unique ID.
	GetByID(id string) (*models.AgentConfig, error)
	// GetAll retrieves all agent configurations.
	GetAll() ([]models.AgentConfig, error)
	// Create inserts a new agent configuration.
	Create(agent *models.AgentConfig) error
	// Update modifies an existing agent configuration.
	Update(agent *models.AgentConfig) error
	// Delete removes an agent configuration by its ID.
	Delete(id string) error
}
