package narrativefx

import (
	"log"
	"os"
	"strings"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

var Module = fx.Provide(
	provideNarrativeConfig,
	provideNarrativeClient,
	provideNarrativeService)

// NarrativeConfig holds configuration for the AI narrative provider.
type NarrativeConfig struct {
	Provider string
	APIKey   string
	Model    string
}

func provideNarrativeConfig() NarrativeConfig {
	provider := getEnvWithDefault("NARRATIVE_PROVIDER", "openai")

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using the OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using the Gemini provider")
		}
	}

	return NarrativeConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

func provideNarrativeClient(config NarrativeConfig) utils.NarrativeClientInterface {
	log.Printf("Initializing %s narrative client with model: %s", config.Provider, config.Model)

	client, err := utils.NewNarrativeClient(config.Provider, config.APIKey, config.Model)
	if err != nil {
		log.Fatalf("failed to create narrative client: %v", err)
	}
	return client
}

func provideNarrativeService(
	config NarrativeConfig,
	client utils.NarrativeClientInterface,
	logger *zap.Logger,
) services.NarrativeServiceInterface {
	return services.NewNarrativeService(client, config.Provider, logger)
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
