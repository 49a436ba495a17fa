package variantgen

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ianleeapple/Online-Math-Dictionary/internal/llm"
)

const validPayload = `{"generated":[{"question":"q","analysis":"a","choices":null,"answer":"1","solution_concept":["c"],"detailed_steps":["s"],"difficulty":"easy"}]}`

func testPlan(models ...string) Plan {
	return Plan{
		Models:        models,
		MaxRetries:    2,
		FallbackDelay: time.Millisecond,
		RetryDelay:    time.Millisecond,
		Temperature:   0.7,
	}
}

func TestRunSucceedsOnFirstAttempt(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: validPayload})
	iv := NewInvoker(mock)

	out := iv.Run(context.Background(), testPlan("m1", "m2"), PromptPair{User: "go"})
	if out.Status != OutcomeSuccess {
		t.Fatalf("status = %q, want success (err: %v)", out.Status, out.Err)
	}
	if out.Attempts != 1 {
		t.Fatalf("attempts = %d, want 1", out.Attempts)
	}
	if len(out.Result.Generated) != 1 {
		t.Fatalf("items = %d, want 1", len(out.Result.Generated))
	}
}

func TestRunFallsBackOnOverload(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrTransient{Provider: "mock", Overloaded: true}},
		llm.MockResponse{Err: &llm.ErrTransient{Provider: "mock", Overloaded: true}},
		llm.MockResponse{Text: validPayload},
	)
	iv := NewInvoker(mock)

	out := iv.Run(context.Background(), testPlan("primary", "fb1", "fb2"), PromptPair{User: "go"})
	if out.Status != OutcomeSuccess {
		t.Fatalf("status = %q, want success", out.Status)
	}
	if out.Attempts != 3 {
		t.Fatalf("attempts = %d, want 3", out.Attempts)
	}

	models := mock.Models()
	want := []string{"primary", "fb1", "fb2"}
	for i, m := range want {
		if models[i] != m {
			t.Fatalf("call %d targeted %q, want %q (all: %v)", i, models[i], m, models)
		}
	}
}

func TestRunRetriesLastModel(t *testing.T) {
	// Two models, MaxRetries 2: budget is 3 attempts. After walking to the
	// last model, remaining attempts re-try it.
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrTransient{Provider: "mock"}},
		llm.MockResponse{Err: &llm.ErrTransient{Provider: "mock"}},
		llm.MockResponse{Text: validPayload},
	)
	iv := NewInvoker(mock)

	out := iv.Run(context.Background(), testPlan("m1", "m2"), PromptPair{User: "go"})
	if out.Status != OutcomeSuccess {
		t.Fatalf("status = %q, want success", out.Status)
	}

	models := mock.Models()
	if models[0] != "m1" || models[1] != "m2" || models[2] != "m2" {
		t.Fatalf("models = %v, want [m1 m2 m2]", models)
	}
}

func TestRunNeverExceedsBudget(t *testing.T) {
	// An empty mock queue fails transiently forever; the run must stop at
	// the attempt budget.
	mock := llm.NewMockProvider()
	iv := NewInvoker(mock)

	plan := testPlan("m1", "m2", "m3")
	out := iv.Run(context.Background(), plan, PromptPair{User: "go"})

	if out.Status != OutcomeExhausted {
		t.Fatalf("status = %q, want exhausted", out.Status)
	}
	budget := plan.MaxRetries + len(plan.Models) - 1
	if mock.CallCount() != budget {
		t.Fatalf("provider calls = %d, want %d", mock.CallCount(), budget)
	}
	if out.Attempts != budget {
		t.Fatalf("attempts = %d, want %d", out.Attempts, budget)
	}
	if out.Err == nil {
		t.Fatal("exhausted outcome carries no error")
	}
}

func TestRunAbortsOnAuthError(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrAuth{Provider: "mock", Err: errors.New("bad key")}},
		llm.MockResponse{Text: validPayload}, // Won't be reached.
	)
	iv := NewInvoker(mock)

	out := iv.Run(context.Background(), testPlan("m1", "m2"), PromptPair{User: "go"})
	if out.Status != OutcomeExhausted {
		t.Fatalf("status = %q, want exhausted", out.Status)
	}
	if out.Attempts != 1 {
		t.Fatalf("attempts = %d, want 1 (no retry on auth failure)", out.Attempts)
	}
	var auth *llm.ErrAuth
	if !errors.As(out.Err, &auth) {
		t.Fatalf("outcome error = %T, want ErrAuth", out.Err)
	}
}

func TestRunAbortsOnQuotaError(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrQuota{Provider: "mock", Err: errors.New("429")}},
	)
	iv := NewInvoker(mock)

	out := iv.Run(context.Background(), testPlan("m1", "m2"), PromptPair{User: "go"})
	if out.Status != OutcomeExhausted {
		t.Fatalf("status = %q, want exhausted", out.Status)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
}

func TestRunSafetyBlock(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		FinishReason: llm.FinishSafety,
		Feedback:     "PROHIBITED_CONTENT",
	})
	iv := NewInvoker(mock)

	out := iv.Run(context.Background(), testPlan("m1", "m2"), PromptPair{User: "go"})
	if out.Status != OutcomeBlocked {
		t.Fatalf("status = %q, want blocked", out.Status)
	}
	if out.BlockReason != "PROHIBITED_CONTENT" {
		t.Fatalf("block reason = %q", out.BlockReason)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1 (blocks are not retried)", mock.CallCount())
	}
}

func TestRunEmptyResponseIsMalformed(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{FinishReason: llm.FinishEmpty})
	iv := NewInvoker(mock)

	out := iv.Run(context.Background(), testPlan("m1"), PromptPair{User: "go"})
	if out.Status != OutcomeMalformed {
		t.Fatalf("status = %q, want malformed", out.Status)
	}
}

func TestRunContextCancelledDuringDelay(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrTransient{Provider: "mock"}},
		llm.MockResponse{Text: validPayload},
	)
	iv := NewInvoker(mock)

	plan := testPlan("m1", "m2")
	plan.FallbackDelay = time.Second

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	out := iv.Run(ctx, plan, PromptPair{User: "go"})
	if out.Status != OutcomeExhausted {
		t.Fatalf("status = %q, want exhausted", out.Status)
	}
	if !errors.Is(out.Err, context.Canceled) {
		t.Fatalf("outcome error = %v, want context.Canceled", out.Err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
}

func TestRunAttemptTimeoutIsTransient(t *testing.T) {
	// A provider slower than the attempt timeout: the deadline fires, the
	// run falls back and succeeds on the second model.
	slow := &slowProvider{delay: 50 * time.Millisecond, then: llm.NewMockProvider(
		llm.MockResponse{Text: validPayload},
		llm.MockResponse{Text: validPayload},
	)}
	iv := NewInvoker(slow)

	plan := testPlan("m1", "m2")
	plan.AttemptTimeout = 5 * time.Millisecond

	out := iv.Run(context.Background(), plan, PromptPair{User: "go"})
	if out.Status != OutcomeExhausted {
		t.Fatalf("status = %q, want exhausted (provider always slower than timeout)", out.Status)
	}
	var transient *llm.ErrTransient
	if !errors.As(out.Err, &transient) {
		t.Fatalf("outcome error = %T, want ErrTransient", out.Err)
	}
	budget := plan.MaxRetries + len(plan.Models) - 1
	if out.Attempts != budget {
		t.Fatalf("attempts = %d, want %d", out.Attempts, budget)
	}
}

// slowProvider waits before delegating, honoring context cancellation.
type slowProvider struct {
	delay time.Duration
	then  llm.Provider
}

func (s *slowProvider) Invoke(ctx context.Context, model string, req llm.Request) (*llm.RawResponse, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(s.delay):
	}
	return s.then.Invoke(ctx, model, req)
}

func (s *slowProvider) Name() string { return "slow" }
