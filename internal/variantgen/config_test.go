package variantgen

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Temperature != 0.7 {
		t.Errorf("temperature = %v, want 0.7", cfg.Temperature)
	}
	if cfg.MaxRetries != 2 {
		t.Errorf("max retries = %d, want 2", cfg.MaxRetries)
	}
	if len(cfg.FallbackModels) != 2 {
		t.Errorf("fallbacks = %v, want 2 entries", cfg.FallbackModels)
	}
	if cfg.StrictValidate {
		t.Error("strict validation must default off")
	}
	for _, d := range []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard} {
		if cfg.PrimaryModels[d] == "" {
			t.Errorf("no primary model for %s", d)
		}
	}
}

func TestConfigFromEnvModelPinsAllDifficulties(t *testing.T) {
	t.Setenv("OMD_MODEL", "gemini-2.0-flash")

	cfg := ConfigFromEnv()
	for d, m := range cfg.PrimaryModels {
		if m != "gemini-2.0-flash" {
			t.Errorf("%s primary = %q, want pinned model", d, m)
		}
	}
}

func TestConfigFromEnvOverrides(t *testing.T) {
	t.Setenv("OMD_FALLBACK_MODELS", "gpt-4o-mini, claude-sonnet-4-5")
	t.Setenv("OMD_TEMPERATURE", "0.3")
	t.Setenv("OMD_MAX_TOKENS", "1500")
	t.Setenv("OMD_MAX_RETRIES", "5")
	t.Setenv("OMD_ATTEMPT_TIMEOUT", "45s")
	t.Setenv("OMD_STRICT_VALIDATE", "true")

	cfg := ConfigFromEnv()

	if len(cfg.FallbackModels) != 2 || cfg.FallbackModels[0] != "gpt-4o-mini" || cfg.FallbackModels[1] != "claude-sonnet-4-5" {
		t.Errorf("fallbacks = %v", cfg.FallbackModels)
	}
	if cfg.Temperature != 0.3 {
		t.Errorf("temperature = %v", cfg.Temperature)
	}
	if cfg.MaxTokens != 1500 {
		t.Errorf("max tokens = %d", cfg.MaxTokens)
	}
	if cfg.MaxRetries != 5 {
		t.Errorf("max retries = %d", cfg.MaxRetries)
	}
	if cfg.AttemptTimeout != 45*time.Second {
		t.Errorf("attempt timeout = %v", cfg.AttemptTimeout)
	}
	if !cfg.StrictValidate {
		t.Error("strict validation not enabled")
	}
}

func TestConfigFromEnvIgnoresGarbage(t *testing.T) {
	t.Setenv("OMD_TEMPERATURE", "hot")
	t.Setenv("OMD_MAX_RETRIES", "-3")

	cfg := ConfigFromEnv()
	def := DefaultConfig()
	if cfg.Temperature != def.Temperature {
		t.Errorf("temperature = %v, want default", cfg.Temperature)
	}
	if cfg.MaxRetries != def.MaxRetries {
		t.Errorf("max retries = %d, want default", cfg.MaxRetries)
	}
}

func TestConfigFromEnvLegacyNames(t *testing.T) {
	t.Setenv("GEMINI_MODEL", "gemini-2.5-pro")
	t.Setenv("AI_TEMPERATURE", "0.9")

	cfg := ConfigFromEnv()
	if cfg.PrimaryModels[DifficultyEasy] != "gemini-2.5-pro" {
		t.Errorf("easy primary = %q", cfg.PrimaryModels[DifficultyEasy])
	}
	if cfg.Temperature != 0.9 {
		t.Errorf("temperature = %v", cfg.Temperature)
	}
}
