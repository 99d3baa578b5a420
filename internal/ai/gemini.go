package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const DefaultModel = "gemini-2.0-flash"

// GeminiProvider implements LLMProvider using Google's Gemini models.
type GeminiProvider struct {
	client  *genai.Client
	planner *genai.GenerativeModel
	chat    *genai.GenerativeModel
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from environment variables; an empty modelName uses DefaultModel.
func NewGeminiProvider(ctx context.Context, apiKey, modelName string) (*GeminiProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("gemini: missing api key")
	}
	if modelName == "" {
		modelName = DefaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	// Structured output: the planner must answer with a RouteResponse document.
	planner := client.GenerativeModel(modelName)
	planner.ResponseMIMEType = "application/json"
	planner.ResponseSchema = RouteResponseSchema()
	planner.SetTemperature(0.4)

	chat := client.GenerativeModel(modelName)
	chat.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(chatPersona)}}
	chat.SetTemperature(0.7)

	return &GeminiProvider{
		client:  client,
		planner: planner,
		chat:    chat,
	}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() error {
	return p.client.Close()
}

func (p *GeminiProvider) GenerateRoutePlan(ctx context.Context, prompt string) (string, error) {
	resp, err := p.planner.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generation error: %w", err)
	}
	text, err := responseText(resp)
	if err != nil {
		return "", err
	}
	return cleanJSONString(text), nil
}

func (p *GeminiProvider) Chat(ctx context.Context, history []ChatMessage, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", fmt.Errorf("gemini: empty message")
	}

	cs := p.chat.StartChat()
	cs.History = toContents(history)

	resp, err := cs.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return "", fmt.Errorf("gemini chat error: %w", err)
	}
	return responseText(resp)
}

func toContents(history []ChatMessage) []*genai.Content {
	out := make([]*genai.Content, 0, len(history))
	for _, m := range history {
		if strings.TrimSpace(m.Text) == "" {
			continue
		}
		role := RoleUser
		if m.Role == RoleModel {
			role = RoleModel
		}
		out = append(out, &genai.Content{Role: role, Parts: []genai.Part{genai.Text(m.Text)}})
	}
	return out
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}

	var textParts []string
	for _, part := range resp.Candidates[0].Content.Parts {
		txt, ok := part.(genai.Text)
		if !ok || strings.TrimSpace(string(txt)) == "" {
			continue
		}
		textParts = append(textParts, string(txt))
	}
	if len(textParts) == 0 {
		return "", ErrEmptyResponse
	}
	return strings.Join(textParts, "\n"), nil
}

// cleanJSONString removes markdown code blocks if present (e.g. ```json ... ```)
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
