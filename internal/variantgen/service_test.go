package variantgen

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ianleeapple/Online-Math-Dictionary/internal/llm"
	"github.com/ianleeapple/Online-Math-Dictionary/internal/store"
)

// memEvents captures generation events in memory.
type memEvents struct {
	llmEvents []store.LLMRequestEventData
	genEvents []store.GenerationEventData
}

func (r *memEvents) AppendLLMRequest(ctx context.Context, data store.LLMRequestEventData) error {
	r.llmEvents = append(r.llmEvents, data)
	return nil
}

func (r *memEvents) AppendGeneration(ctx context.Context, data store.GenerationEventData) error {
	r.genEvents = append(r.genEvents, data)
	return nil
}

func (r *memEvents) QueryLLMEvents(ctx context.Context, opts store.QueryOpts) ([]store.LLMRequestEvent, error) {
	return nil, nil
}

func (r *memEvents) GetLLMEvent(ctx context.Context, id int) (*store.LLMRequestEvent, error) {
	return nil, nil
}

func (r *memEvents) LLMUsageByPurpose(ctx context.Context) ([]store.UsageStat, error) {
	return nil, nil
}

func fastConfig() Config {
	cfg := DefaultConfig()
	cfg.AttemptTimeout = time.Second
	cfg.FallbackDelay = time.Millisecond
	cfg.RetryDelay = time.Millisecond
	return cfg
}

func serviceRequest() GenerationRequest {
	return GenerationRequest{
		SourceTemplate: "Solve x + 1 = 3.",
		QuestionType:   TypeSingleChoice,
		Difficulty:     DifficultyEasy,
		VariationCount: 2,
	}
}

const choicePayload = `{"generated":[
	{"question":"Solve x + 2 = 5.","analysis":"linear equations","choices":["1","2","3","4"],"answer":"3","solution_concept":["isolate x"],"detailed_steps":["x = 5 - 2","x = 3"],"difficulty":"easy"},
	{"question":"Solve 2x = 8.","analysis":"linear equations","choices":["2","3","4","5"],"answer":"4","solution_concept":["divide both sides"],"detailed_steps":["x = 8 / 2","x = 4"],"difficulty":"easy"}
]}`

func TestGenerateSuccess(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: choicePayload})
	events := &memEvents{}
	svc := NewService(mock, fastConfig(), events)

	out, err := svc.Generate(context.Background(), serviceRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Status != OutcomeSuccess {
		t.Fatalf("status = %q (err: %v)", out.Status, out.Err)
	}
	if len(out.Result.Generated) != 2 {
		t.Fatalf("items = %d, want 2", len(out.Result.Generated))
	}
	if out.Result.Generated[0].Choices == nil {
		t.Error("choice problem lost its choices")
	}

	// The run targeted the easy-tier primary.
	if got := mock.Models()[0]; got != "gemini-2.5-flash-lite" {
		t.Errorf("first model = %q", got)
	}

	// The run was recorded.
	if len(events.genEvents) != 1 {
		t.Fatalf("generation events = %d, want 1", len(events.genEvents))
	}
	e := events.genEvents[0]
	if e.Outcome != "success" || e.ItemCount != 2 || e.Attempts != 1 {
		t.Fatalf("event = %+v", e)
	}
	if e.RequestID == "" {
		t.Error("event has no request ID")
	}
}

func TestGenerateInvalidRequest(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := NewService(mock, fastConfig(), nil)

	req := serviceRequest()
	req.VariationCount = 0

	_, err := svc.Generate(context.Background(), req)
	var invalid *InvalidRequestError
	if !errors.As(err, &invalid) {
		t.Fatalf("error = %v, want InvalidRequestError", err)
	}
	if mock.CallCount() != 0 {
		t.Fatal("invalid request must not reach the provider")
	}
}

func TestGenerateMissingTemplate(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := NewService(mock, fastConfig(), nil)

	req := serviceRequest()
	req.SourceTemplate = ""

	_, err := svc.Generate(context.Background(), req)
	var invalid *InvalidRequestError
	if !errors.As(err, &invalid) {
		t.Fatalf("error = %v, want InvalidRequestError", err)
	}
}

func TestGenerateProviderFailureResolvesToOutcome(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrAuth{Provider: "mock", Err: errors.New("bad key")}},
	)
	events := &memEvents{}
	svc := NewService(mock, fastConfig(), events)

	out, err := svc.Generate(context.Background(), serviceRequest())
	if err != nil {
		t.Fatalf("provider failure must not surface as an error: %v", err)
	}
	if out.Status != OutcomeExhausted {
		t.Fatalf("status = %q, want exhausted", out.Status)
	}
	if len(events.genEvents) != 1 || events.genEvents[0].Outcome != "exhausted" {
		t.Fatalf("events = %+v", events.genEvents)
	}
}

func TestGenerateStrictValidateRejectsIncomplete(t *testing.T) {
	// Items missing required fields pass the lenient path but fail strict
	// validation.
	mock := llm.NewMockProvider(llm.MockResponse{Text: `{"generated":[{"question":"q"}]}`})
	cfg := fastConfig()
	cfg.StrictValidate = true
	svc := NewService(mock, cfg, nil)

	out, err := svc.Generate(context.Background(), serviceRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Status != OutcomeMalformed {
		t.Fatalf("status = %q, want malformed under strict validation", out.Status)
	}
}

func TestGenerateLenientAcceptsIncomplete(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: `{"generated":[{"question":"q"}]}`})
	svc := NewService(mock, fastConfig(), nil)

	out, err := svc.Generate(context.Background(), serviceRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Status != OutcomeSuccess {
		t.Fatalf("status = %q, want success on the lenient default", out.Status)
	}
}

func TestGenerateWorksWithoutEventRepo(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: choicePayload})
	svc := NewService(mock, fastConfig(), nil)

	out, err := svc.Generate(context.Background(), serviceRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Status != OutcomeSuccess {
		t.Fatalf("status = %q", out.Status)
	}
}
