// File: services/agent/preview.go
package agent

import (
	"context"
	"fmt"
	"strings"

	"medcrm/models"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient is the production PreviewClient.
type GeminiClient struct {
	model *genai.GenerativeModel
}

func NewGeminiClient(apiKey string) *GeminiClient {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		panic(fmt.Sprintf("failed to create Gemini client: %v", err))
	}

	model := client.GenerativeModel("models/gemini-1.5-pro")
	return &GeminiClient{model: model}
}

func (g *GeminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String(), nil
}

// sampleValues are the stand-in values used when previewing a script line.
var sampleValues = map[string]string{
	"name":                "Maria",
	"clinic_name":         "Riverside Medical Center",
	"agent_name":          "Ava",
	"doctor_name":         "Dr. Chen",
	"specialty":           "Dermatology",
	"consultation_price":  "120",
	"next_available_date": "next Tuesday",
	"next_available_time": "10:30",
}

// FillSample substitutes every known {{variable}} in the template with its
// sample value. Unknown variables are left in place so they stand out in the
// preview.
func FillSample(template string) string {
	out := template
	for name, value := range sampleValues {
		out = strings.ReplaceAll(out, "{{"+name+"}}", value)
	}
	return out
}

func (s *DefaultAgentService) Preview(ctx context.Context, id, field string) (string, error) {
	agent, err := s.Repo.GetByID(id)
	if err != nil {
		return "", err
	}

	var template string
	switch field {
	case models.ScriptFieldGreeting:
		template = agent.Script.Greeting
	case models.ScriptFieldServiceDescription:
		template = agent.Script.ServiceDescription
	case models.ScriptFieldAvailability:
		template = agent.Script.Availability
	default:
		return "", fmt.Errorf("unknown script field %q", field)
	}
	if template == "" {
		return "", fmt.Errorf("script field %q is empty", field)
	}

	filled := FillSample(template)
	if s.LLM == nil {
		// No model configured: the filled-in template is the preview.
		return filled, nil
	}

	prompt := fmt.Sprintf(
		"You are %s, a phone receptionist for a medical clinic. Say the following line naturally, as you would on a call. Reply with the spoken line only.\n\n%s",
		agent.Name, filled,
	)
	return s.LLM.GenerateContent(ctx, prompt)
}
