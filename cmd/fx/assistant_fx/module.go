package assistant_fx

import (
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"travo/internal/api/controllers"
	"travo/internal/services"
	"travo/pkg/memcache"
	"travo/pkg/utils"
)

var Module = fx.Provide(
	ProvideTextGenerationClient,
	ProvideTripHandoff,
	ProvideDialogService,
	ProvideAssistantService,
	ProvideChatController)

// TextGenConfig holds configuration for text generation clients
type TextGenConfig struct {
	Provider string
	APIKey   string
	BaseURL  string
	Model    string
}

// ProvideTextGenerationClient creates a text generation client based on environment variables
func ProvideTextGenerationClient() (utils.TextGenerationClient, error) {
	config := getTextGenConfig()

	log.Printf("Initializing %s text generation client with model: %s", config.Provider, config.Model)

	switch strings.ToLower(config.Provider) {
	case "openrouter":
		return utils.NewOpenRouterClient(config.APIKey, config.BaseURL, config.Model), nil
	case "gemini":
		client, err := utils.NewGeminiClient(config.APIKey, config.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported text generation provider: %s. Use 'openrouter' or 'gemini'", config.Provider)
	}
}

func ProvideTripHandoff() memcache.TripHandoffStore {
	return memcache.NewTripHandoff()
}

func ProvideDialogService(handoff memcache.TripHandoffStore) services.DialogServiceInterface {
	return services.NewDialogService(handoff)
}

func ProvideAssistantService(
	dialog services.DialogServiceInterface,
	textgen utils.TextGenerationClient,
) services.AssistantServiceInterface {
	return services.NewAssistantService(dialog, textgen)
}

func ProvideChatController(assistantService services.AssistantServiceInterface) *controllers.ChatController {
	return controllers.NewChatController(assistantService)
}

// getTextGenConfig reads configuration from environment variables
func getTextGenConfig() TextGenConfig {
	provider := utils.GetEnvWithDefault("TEXTGEN_PROVIDER", "openrouter")

	var apiKey, baseURL, model string

	switch strings.ToLower(provider) {
	case "openrouter":
		apiKey = os.Getenv("OPENROUTER_API_KEY")
		baseURL = utils.GetEnvWithDefault("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1")
		model = utils.GetEnvWithDefault("OPENROUTER_MODEL", "anthropic/claude-3-haiku")
		if apiKey == "" {
			log.Fatal("OPENROUTER_API_KEY is required when using OpenRouter provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = utils.GetEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return TextGenConfig{
		Provider: provider,
		APIKey:   apiKey,
		BaseURL:  baseURL,
		Model:    model,
	}
}
