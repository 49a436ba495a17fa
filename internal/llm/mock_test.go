package llm

import (
	"context"
	"errors"
	"testing"
)

func TestMockReturnsResponsesInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Text: "first"},
		MockResponse{Text: "second"},
	)

	resp, err := mock.Invoke(context.Background(), "m1", Request{User: "hi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "first" {
		t.Fatalf("text = %q, want 'first'", resp.Text)
	}
	if resp.FinishReason != FinishStop {
		t.Fatalf("finish reason = %q, want %q", resp.FinishReason, FinishStop)
	}

	resp, err = mock.Invoke(context.Background(), "m2", Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "second" {
		t.Fatalf("text = %q, want 'second'", resp.Text)
	}
}

func TestMockEmptyQueueIsTransient(t *testing.T) {
	mock := NewMockProvider()

	_, err := mock.Invoke(context.Background(), "m", Request{})
	if err == nil {
		t.Fatal("expected error on empty queue")
	}
	var transient *ErrTransient
	if !errors.As(err, &transient) {
		t.Fatalf("expected ErrTransient, got %T", err)
	}
}

func TestMockRecordsModelPerCall(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Text: "a"},
		MockResponse{Text: "b"},
	)

	mock.Invoke(context.Background(), "gemini-2.5-pro", Request{})
	mock.Invoke(context.Background(), "gemini-2.5-flash", Request{})

	models := mock.Models()
	if len(models) != 2 {
		t.Fatalf("expected 2 recorded calls, got %d", len(models))
	}
	if models[0] != "gemini-2.5-pro" || models[1] != "gemini-2.5-flash" {
		t.Fatalf("recorded models = %v", models)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("call count = %d, want 2", mock.CallCount())
	}
}

func TestMockRespectsCancelledContext(t *testing.T) {
	mock := NewMockProvider(MockResponse{Text: "unreached"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := mock.Invoke(ctx, "m", Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestMockErrorResponse(t *testing.T) {
	wantErr := &ErrQuota{Provider: "mock", Err: errors.New("429")}
	mock := NewMockProvider(MockResponse{Err: wantErr})

	_, err := mock.Invoke(context.Background(), "m", Request{})
	var quota *ErrQuota
	if !errors.As(err, &quota) {
		t.Fatalf("expected ErrQuota, got %T", err)
	}
}
