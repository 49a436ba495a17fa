package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/ianleeapple/Online-Math-Dictionary/internal/store"
)

// memEventRepo captures appended events in memory.
type memEventRepo struct {
	llmEvents []store.LLMRequestEventData
	genEvents []store.GenerationEventData
	appendErr error
}

func (r *memEventRepo) AppendLLMRequest(ctx context.Context, data store.LLMRequestEventData) error {
	if r.appendErr != nil {
		return r.appendErr
	}
	r.llmEvents = append(r.llmEvents, data)
	return nil
}

func (r *memEventRepo) AppendGeneration(ctx context.Context, data store.GenerationEventData) error {
	r.genEvents = append(r.genEvents, data)
	return nil
}

func (r *memEventRepo) QueryLLMEvents(ctx context.Context, opts store.QueryOpts) ([]store.LLMRequestEvent, error) {
	return nil, nil
}

func (r *memEventRepo) GetLLMEvent(ctx context.Context, id int) (*store.LLMRequestEvent, error) {
	return nil, nil
}

func (r *memEventRepo) LLMUsageByPurpose(ctx context.Context) ([]store.UsageStat, error) {
	return nil, nil
}

func TestLoggingRecordsSuccess(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Text:  "hello",
		Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15},
	})
	repo := &memEventRepo{}
	p := WithLogging(mock, repo)

	ctx := WithPurpose(context.Background(), "variant-gen")
	ctx = WithRequestID(ctx, "req-1")

	_, err := p.Invoke(ctx, "gemini-2.5-flash", Request{System: "sys", User: "usr"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.llmEvents) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.llmEvents))
	}
	e := repo.llmEvents[0]
	if e.Provider != "mock" || e.Model != "gemini-2.5-flash" {
		t.Fatalf("provider/model = %q/%q", e.Provider, e.Model)
	}
	if e.Purpose != "variant-gen" || e.RequestID != "req-1" {
		t.Fatalf("purpose/requestID = %q/%q", e.Purpose, e.RequestID)
	}
	if !e.Success {
		t.Error("success = false for a successful call")
	}
	if e.InputTokens != 10 || e.OutputTokens != 5 {
		t.Errorf("tokens = %d/%d, want 10/5", e.InputTokens, e.OutputTokens)
	}
	if e.ResponseBody != "hello" {
		t.Errorf("response body = %q", e.ResponseBody)
	}
}

func TestLoggingRecordsFailure(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrQuota{Provider: "mock", Err: errors.New("429")}})
	repo := &memEventRepo{}
	p := WithLogging(mock, repo)

	_, err := p.Invoke(context.Background(), "gpt-4o", Request{User: "u"})
	if err == nil {
		t.Fatal("expected error")
	}

	if len(repo.llmEvents) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.llmEvents))
	}
	e := repo.llmEvents[0]
	if e.Success {
		t.Error("success = true for a failed call")
	}
	if e.ErrorMessage == "" {
		t.Error("error message is empty")
	}
	if e.Purpose != "unknown" {
		t.Errorf("purpose = %q, want 'unknown' default", e.Purpose)
	}
}

func TestLoggingFailureDoesNotBreakCall(t *testing.T) {
	mock := NewMockProvider(MockResponse{Text: "ok"})
	repo := &memEventRepo{appendErr: errors.New("db locked")}
	p := WithLogging(mock, repo)

	resp, err := p.Invoke(context.Background(), "m", Request{User: "u"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "ok" {
		t.Fatalf("text = %q", resp.Text)
	}
}
