package variantgen

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config controls plan construction and post-processing for generation
// runs. Everything here is externally supplied; nothing is persisted.
type Config struct {
	// PrimaryModels maps difficulty to the first model tried. A request's
	// difficulty selects its primary; fallbacks are shared.
	PrimaryModels map[Difficulty]string

	// FallbackModels are tried in order after the primary fails
	// transiently. Fixed, config-driven order; never dynamically ranked.
	FallbackModels []string

	// Temperature for generation. Math problems want moderate creativity.
	Temperature float64

	// MaxTokens caps the response. Zero means provider default.
	MaxTokens int

	// MaxRetries bounds extra attempts beyond the fallback walk.
	MaxRetries int

	// AttemptTimeout bounds each single provider call.
	AttemptTimeout time.Duration

	// FallbackDelay is the fixed wait before switching to the next
	// model. RetryDelay is the longer fixed wait before re-trying the
	// last model. Both are deliberately not exponential so total latency
	// stays inside the outer HTTP caller's timeout.
	FallbackDelay time.Duration
	RetryDelay    time.Duration

	// StrictValidate switches on JSON Schema validation of successful
	// payloads. Off by default: the original platform accepted items
	// with missing fields and let the frontend cope.
	StrictValidate bool
}

// DefaultConfig returns the standard generation configuration.
func DefaultConfig() Config {
	return Config{
		PrimaryModels: map[Difficulty]string{
			DifficultyEasy:   "gemini-2.5-flash-lite",
			DifficultyMedium: "gemini-2.5-flash",
			DifficultyHard:   "gemini-2.5-pro",
		},
		FallbackModels: []string{"gemini-2.5-flash", "gemini-2.0-flash"},
		Temperature:    0.7,
		MaxTokens:      0,
		MaxRetries:     2,
		AttemptTimeout: 30 * time.Second,
		FallbackDelay:  1 * time.Second,
		RetryDelay:     2 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values. GEMINI_MODEL and AI_TEMPERATURE /
// AI_MAX_TOKENS are accepted for compatibility with existing deployments.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if m := firstEnv("OMD_MODEL", "GEMINI_MODEL"); m != "" {
		// A single override pins every difficulty to one model.
		for d := range cfg.PrimaryModels {
			cfg.PrimaryModels[d] = m
		}
	}
	if v := os.Getenv("OMD_FALLBACK_MODELS"); v != "" {
		cfg.FallbackModels = splitModels(v)
	}
	if v := firstEnv("OMD_TEMPERATURE", "AI_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Temperature = f
		}
	}
	if v := firstEnv("OMD_MAX_TOKENS", "AI_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxTokens = n
		}
	}
	if v := os.Getenv("OMD_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("OMD_ATTEMPT_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.AttemptTimeout = d
		}
	}
	if v := os.Getenv("OMD_STRICT_VALIDATE"); v != "" {
		cfg.StrictValidate = v == "1" || strings.EqualFold(v, "true")
	}

	return cfg
}

func splitModels(s string) []string {
	var out []string
	for _, m := range strings.Split(s, ",") {
		if m = strings.TrimSpace(m); m != "" {
			out = append(out, m)
		}
	}
	return out
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}
