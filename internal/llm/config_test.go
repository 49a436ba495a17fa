package llm

import (
	"strings"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "gemini with key",
			cfg:  Config{Provider: "gemini", Gemini: GeminiConfig{APIKey: "k"}},
		},
		{
			name:    "gemini without key",
			cfg:     Config{Provider: "gemini"},
			wantErr: "OMD_GEMINI_API_KEY",
		},
		{
			name: "openai with key",
			cfg:  Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "k"}},
		},
		{
			name:    "openai without key",
			cfg:     Config{Provider: "openai"},
			wantErr: "OMD_OPENAI_API_KEY",
		},
		{
			name: "anthropic with key",
			cfg:  Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "k"}},
		},
		{
			name:    "anthropic without key",
			cfg:     Config{Provider: "anthropic"},
			wantErr: "OMD_ANTHROPIC_API_KEY",
		},
		{
			name: "openrouter with key",
			cfg:  Config{Provider: "openrouter", OpenRouter: OpenRouterConfig{APIKey: "k"}},
		},
		{
			name:    "openrouter without key",
			cfg:     Config{Provider: "openrouter"},
			wantErr: "OMD_OPENROUTER_API_KEY",
		},
		{
			name: "mock needs no key",
			cfg:  Config{Provider: "mock"},
		},
		{
			name:    "unknown provider",
			cfg:     Config{Provider: "cohere"},
			wantErr: "unknown LLM provider",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("OMD_LLM_PROVIDER", "anthropic")
	t.Setenv("OMD_ANTHROPIC_API_KEY", "omd-key")
	t.Setenv("ANTHROPIC_API_KEY", "vendor-key")

	cfg := ConfigFromEnv()
	if cfg.Provider != "anthropic" {
		t.Fatalf("provider = %q, want 'anthropic'", cfg.Provider)
	}
	if cfg.Anthropic.APIKey != "omd-key" {
		t.Fatal("OMD_-prefixed key must win over the vendor name")
	}
}

func TestConfigFromEnvVendorFallback(t *testing.T) {
	t.Setenv("OMD_GEMINI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "vendor-key")

	cfg := ConfigFromEnv()
	if cfg.Gemini.APIKey != "vendor-key" {
		t.Fatalf("gemini key = %q, want vendor fallback", cfg.Gemini.APIKey)
	}
	if cfg.Provider != "gemini" {
		t.Fatalf("default provider = %q, want 'gemini'", cfg.Provider)
	}
}
