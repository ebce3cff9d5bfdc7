package utils

import (
	"context"
	"os"
)

// GenerationOptions carries the per-call knobs of the completions endpoint.
// JSONOutput asks the provider for a schema-constrained (json_object) reply.
type GenerationOptions struct {
	Temperature float32
	MaxTokens   int
	JSONOutput  bool
}

// TextGenerationClient is a thin wrapper over a remote chat-completions
// endpoint. Implementations are stateless between calls and never retry:
// every transport or decode problem surfaces as ErrGenerationUnavailable so
// callers only react to success/failure.
type TextGenerationClient interface {
	GenerateText(ctx context.Context, systemPrompt string, userPrompt string, opts GenerationOptions) (string, error)
}

// GetEnvWithDefault returns the environment variable or a default value.
func GetEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
