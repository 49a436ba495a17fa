package llm

import (
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func TestMapOpenAIFinishReason(t *testing.T) {
	tests := []struct {
		reason openai.FinishReason
		want   FinishReason
	}{
		{openai.FinishReasonStop, FinishStop},
		{openai.FinishReasonContentFilter, FinishSafety},
		{openai.FinishReasonNull, FinishEmpty},
		{"", FinishEmpty},
		{openai.FinishReasonLength, FinishOther},
		{openai.FinishReasonFunctionCall, FinishOther},
	}

	for _, tt := range tests {
		if got := mapOpenAIFinishReason(tt.reason); got != tt.want {
			t.Errorf("mapOpenAIFinishReason(%q) = %q, want %q", tt.reason, got, tt.want)
		}
	}
}

func TestBuildOpenAIMessages(t *testing.T) {
	msgs := buildOpenAIMessages(Request{System: "sys", User: "usr"})
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].Role != openai.ChatMessageRoleSystem || msgs[0].Content != "sys" {
		t.Fatalf("system message = %+v", msgs[0])
	}
	if msgs[1].Role != openai.ChatMessageRoleUser || msgs[1].Content != "usr" {
		t.Fatalf("user message = %+v", msgs[1])
	}
}

func TestBuildOpenAIMessagesNoSystem(t *testing.T) {
	msgs := buildOpenAIMessages(Request{User: "usr"})
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	if msgs[0].Role != openai.ChatMessageRoleUser {
		t.Fatalf("role = %q, want user", msgs[0].Role)
	}
}

func TestOpenAIStyleProviderRequiresKey(t *testing.T) {
	if _, err := NewOpenAIProvider(OpenAIConfig{}); err == nil {
		t.Fatal("expected error without API key")
	}
}

func TestOpenAIProviderName(t *testing.T) {
	p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "test"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name() != "openai" {
		t.Fatalf("name = %q, want 'openai'", p.Name())
	}
}
