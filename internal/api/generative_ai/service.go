package generativeAI

import (
	"context"
	"fmt"

	"github.com/FACorreiaa/go-mood-planner/config"
	"google.golang.org/genai"
)

// AIClient wraps the genai client with the configured model. Both pipeline
// prompts (tag extraction and itinerary generation) go through
// GenerateResponse with their own GenerateContentConfig.
type AIClient struct {
	client *genai.Client
	model  string
}

func NewAIClient(ctx context.Context, model string) (*AIClient, error) {
	apiKey, err := config.RequireEnv("GOOGLE_GEMINI_API_KEY")
	if err != nil {
		return nil, err
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &AIClient{
		client: client,
		model:  model,
	}, nil
}

func (ai *AIClient) GenerateResponse(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return ai.client.Models.GenerateContent(ctx, ai.model, genai.Text(prompt), config)
}
