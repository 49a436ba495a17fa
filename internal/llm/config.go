package llm

import (
	"fmt"
	"os"
)

// Config selects and configures the provider backend. API keys are read
// from the environment only; they never appear in logs or source.
type Config struct {
	// Provider selects which backend to use.
	// Values: "gemini", "openai", "anthropic", "openrouter", "mock"
	Provider string

	Gemini     GeminiConfig
	OpenAI     OpenAIConfig
	Anthropic  AnthropicConfig
	OpenRouter OpenRouterConfig
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string // Optional. Override for compatible APIs.
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string
	BaseURL string // Default: "https://openrouter.ai/api/v1"
}

// DefaultConfig returns a Config with the standard backend selected.
// Gemini is the default because it is the platform's primary vendor.
func DefaultConfig() Config {
	return Config{Provider: "gemini"}
}

// ConfigFromEnv builds a Config from environment variables. OMD_-prefixed
// variables win; the standard vendor key names are accepted as fallbacks so
// existing shell setups keep working.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("OMD_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}

	cfg.Gemini.APIKey = firstEnv("OMD_GEMINI_API_KEY", "GEMINI_API_KEY")
	cfg.OpenAI.APIKey = firstEnv("OMD_OPENAI_API_KEY", "OPENAI_API_KEY")
	cfg.OpenAI.BaseURL = os.Getenv("OMD_OPENAI_BASE_URL")
	cfg.Anthropic.APIKey = firstEnv("OMD_ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY")
	cfg.OpenRouter.APIKey = firstEnv("OMD_OPENROUTER_API_KEY", "OPENROUTER_API_KEY")
	cfg.OpenRouter.BaseURL = os.Getenv("OMD_OPENROUTER_BASE_URL")

	return cfg
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("OMD_GEMINI_API_KEY is required for the gemini provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("OMD_OPENAI_API_KEY is required for the openai provider")
		}
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("OMD_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "openrouter":
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("OMD_OPENROUTER_API_KEY is required for the openrouter provider")
		}
	case "mock":
		// No API key needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}
