package utils

import (
	"context"
	"log"

	openai "github.com/sashabaranov/go-openai"
)

// OpenRouterClient talks to an OpenAI-compatible chat-completions endpoint
// (OpenRouter by default). The bearer token and base URL come from
// configuration, never from code.
type OpenRouterClient struct {
	client *openai.Client
	model  string
}

func NewOpenRouterClient(apiKey, baseURL, model string) *OpenRouterClient {
	if baseURL == "" {
		baseURL = "https://openrouter.ai/api/v1"
	}
	if model == "" {
		model = "anthropic/claude-3-haiku"
	}

	config := openai.DefaultConfig(apiKey)
	config.BaseURL = baseURL

	return &OpenRouterClient{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

func (c *OpenRouterClient) GenerateText(ctx context.Context, systemPrompt string, userPrompt string, opts GenerationOptions) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	}
	if opts.JSONOutput {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		log.Printf("OpenRouter API error: %v", err)
		return "", ErrGenerationUnavailable
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		log.Printf("OpenRouter returned no content for model %s", c.model)
		return "", ErrGenerationUnavailable
	}

	return resp.Choices[0].Message.Content, nil
}
