package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

func newTestAnthropicProvider(t *testing.T, handler http.HandlerFunc) *AnthropicProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := anthropic.NewClient(
		option.WithAPIKey("test-key"),
		option.WithBaseURL(server.URL),
		option.WithMaxRetries(0),
	)
	return &AnthropicProvider{client: &client}
}

func anthropicMessage(text, stopReason string) map[string]any {
	return map[string]any{
		"id":   "msg_test",
		"type": "message",
		"role": "assistant",
		"content": []map[string]any{
			{"type": "text", "text": text},
		},
		"model":       "claude-sonnet-4-5",
		"stop_reason": stopReason,
		"usage": map[string]any{
			"input_tokens":  50,
			"output_tokens": 30,
		},
	}
}

func TestAnthropicProvider_HappyPath(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(anthropicMessage(`{"generated":[]}`, "end_turn"))
	}

	p := newTestAnthropicProvider(t, handler)
	resp, err := p.Invoke(context.Background(), "claude-sonnet-4-5", Request{
		System: "You are a math problem author.",
		User:   "Generate a problem.",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != `{"generated":[]}` {
		t.Fatalf("text = %q", resp.Text)
	}
	if resp.FinishReason != FinishStop {
		t.Fatalf("finish = %q, want %q", resp.FinishReason, FinishStop)
	}
	if resp.Usage.InputTokens != 50 || resp.Usage.OutputTokens != 30 {
		t.Fatalf("usage = %+v", resp.Usage)
	}
}

func TestAnthropicProvider_Refusal(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(anthropicMessage("I can't help with that.", "refusal"))
	}

	p := newTestAnthropicProvider(t, handler)
	resp, err := p.Invoke(context.Background(), "claude-sonnet-4-5", Request{User: "test"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.FinishReason != FinishSafety {
		t.Fatalf("finish = %q, want %q", resp.FinishReason, FinishSafety)
	}
}

func TestAnthropicProvider_RateLimit(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"type": "error",
			"error": map[string]any{
				"type":    "rate_limit_error",
				"message": "Rate limit exceeded",
			},
		})
	}

	p := newTestAnthropicProvider(t, handler)
	_, err := p.Invoke(context.Background(), "claude-sonnet-4-5", Request{User: "test"})
	if err == nil {
		t.Fatal("expected error")
	}
	var quota *ErrQuota
	if !errors.As(err, &quota) {
		t.Fatalf("expected ErrQuota, got: %T (%v)", err, err)
	}
}

func TestAnthropicProvider_Overloaded(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(529)
		json.NewEncoder(w).Encode(map[string]any{
			"type": "error",
			"error": map[string]any{
				"type":    "overloaded_error",
				"message": "Overloaded",
			},
		})
	}

	p := newTestAnthropicProvider(t, handler)
	_, err := p.Invoke(context.Background(), "claude-sonnet-4-5", Request{User: "test"})
	if err == nil {
		t.Fatal("expected error")
	}
	var transient *ErrTransient
	if !errors.As(err, &transient) {
		t.Fatalf("expected ErrTransient, got: %T (%v)", err, err)
	}
	if !transient.Overloaded {
		t.Fatal("529 must classify as overloaded")
	}
}

func TestAnthropicProvider_AuthError(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{
			"type": "error",
			"error": map[string]any{
				"type":    "authentication_error",
				"message": "invalid x-api-key",
			},
		})
	}

	p := newTestAnthropicProvider(t, handler)
	_, err := p.Invoke(context.Background(), "claude-sonnet-4-5", Request{User: "test"})
	if err == nil {
		t.Fatal("expected error")
	}
	var auth *ErrAuth
	if !errors.As(err, &auth) {
		t.Fatalf("expected ErrAuth, got: %T (%v)", err, err)
	}
}

func TestAnthropicProvider_Name(t *testing.T) {
	p := &AnthropicProvider{}
	if p.Name() != "anthropic" {
		t.Fatalf("name = %q, want 'anthropic'", p.Name())
	}
}
