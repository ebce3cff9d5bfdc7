package utils

import (
	"context"
	"fmt"
	"log"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient implements TextGenerationClient using Google's Gemini models.
// Kept as an alternative provider for deployments without an OpenRouter key.
type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(apiKey, model string) (*GeminiClient, error) {
	if model == "" {
		model = "gemini-1.5-flash" // Free tier model
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiClient) GenerateText(ctx context.Context, systemPrompt string, userPrompt string, opts GenerationOptions) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(opts.Temperature)
	if opts.MaxTokens > 0 {
		m.SetMaxOutputTokens(int32(opts.MaxTokens))
	}
	if opts.JSONOutput {
		m.ResponseMIMEType = "application/json"
	}
	if systemPrompt != "" {
		m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}
	}

	resp, err := m.GenerateContent(ctx, genai.Text(userPrompt))
	if err != nil {
		log.Printf("Gemini API error: %v", err)
		return "", ErrGenerationUnavailable
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		log.Printf("Gemini returned no content for model %s", c.model)
		return "", ErrGenerationUnavailable
	}

	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

func (c *GeminiClient) Close() error {
	return c.client.Close()
}
