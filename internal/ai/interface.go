package ai

import (
	"context"
)

// LLMProvider defines the contract for interacting with AI models.
// This interface allows for swapping different AI providers in the future.
type LLMProvider interface {
	// GenerateRoutePlan sends a route-planning prompt and returns the raw JSON text
	// produced under the route response schema.
	GenerateRoutePlan(ctx context.Context, prompt string) (string, error)

	// Chat continues a conversation with the travel assistant persona and returns
	// the model's reply.
	Chat(ctx context.Context, history []ChatMessage, message string) (string, error)
}
