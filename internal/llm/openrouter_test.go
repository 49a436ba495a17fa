package llm

import "testing"

func TestOpenRouterProviderName(t *testing.T) {
	p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "test"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name() != "openrouter" {
		t.Fatalf("name = %q, want 'openrouter'", p.Name())
	}
}

func TestOpenRouterRequiresKey(t *testing.T) {
	if _, err := NewOpenRouterProvider(OpenRouterConfig{}); err == nil {
		t.Fatal("expected error without API key")
	}
}
