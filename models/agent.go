package models

import "time"

// AgentScript is the script field of an agent record: plain strings that may
// contain {{variable}} placeholders substituted at call time.
type AgentScript struct {
	Greeting           string `bson:"greeting" json:"greeting"`
	ServiceDescription string `bson:"service_description" json:"service_description"`
	Availability       string `bson:"availability" json:"availability"`
}

// AgentConfig is a voice-agent (AI call bot) configuration.
type AgentConfig struct {
	ID          string      `bson:"id" json:"id"`
	Name        string      `bson:"name" json:"name"`
	PhoneNumber string      `bson:"phone_number" json:"phone_number"`
	Voice       string      `bson:"voice" json:"voice"`       // e.g. "alloy", "nova"
	Language    string      `bson:"language" json:"language"` // BCP-47, e.g. "en-US"
	Script      AgentScript `bson:"script" json:"script"`
	Enabled     bool        `bson:"enabled" json:"enabled"`
	CreatedAt   time.Time   `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time   `bson:"updated_at" json:"updated_at"`
}

// ScriptVariable is one insertable placeholder offered to the script editor.
type ScriptVariable struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Script fields that carry variable catalogs.
const (
	ScriptFieldGreeting           = "greeting"
	ScriptFieldServiceDescription = "service_description"
	ScriptFieldAvailability       = "availability"
)

// InsertVariableRequest asks the server to splice {{variable}} into one
// script field at the caret selection.
type InsertVariableRequest struct {
	Field      string `json:"field" binding:"required,oneof=greeting service_description availability"`
	Template   string `json:"template"`
	CaretStart int    `json:"caret_start"`
	CaretEnd   int    `json:"caret_end"`
	Variable   string `json:"variable" binding:"required"`
}

// InsertVariableResponse returns the spliced template and the caret position
// immediately after the inserted token, so the editor can restore focus.
type InsertVariableResponse struct {
	Template string `json:"template"`
	CaretPos int    `json:"caret_pos"`
}

// CreateAgentRequest is the payload for registering a new voice agent.
type CreateAgentRequest struct {
	Name        string      `json:"name" binding:"required"`
	PhoneNumber string      `json:"phone_number"`
	Voice       string      `json:"voice"`
	Language    string      `json:"language"`
	Script      AgentScript `json:"script"`
}
