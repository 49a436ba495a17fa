package variantgen

import (
	"context"
	"errors"
	"time"

	"github.com/ianleeapple/Online-Math-Dictionary/internal/llm"
)

// Invoker drives one generation run against a Provider: sequential
// attempts, model fallback on overload, bounded retries. It holds no
// per-run state; concurrent Runs are independent.
type Invoker struct {
	provider llm.Provider
}

// NewInvoker creates an Invoker over the given provider.
func NewInvoker(p llm.Provider) *Invoker {
	return &Invoker{provider: p}
}

// Run executes the plan and resolves to exactly one Outcome. Recovery
// rules: transient errors advance through the plan; anything else aborts
// immediately: switching models cannot fix a bad key or an exhausted
// quota.
func (iv *Invoker) Run(ctx context.Context, plan Plan, prompts PromptPair) Outcome {
	req := llm.Request{
		System:      prompts.System,
		User:        prompts.User,
		Temperature: plan.Temperature,
		MaxTokens:   plan.MaxTokens,
	}

	budget := plan.maxAttempts()
	modelIdx := 0
	attempts := 0
	var lastErr error

	for attempt := 0; attempt < budget; attempt++ {
		raw, err := iv.attempt(ctx, plan, plan.Models[modelIdx], req)
		attempts++

		if err == nil {
			out := resolveResponse(raw)
			out.Attempts = attempts
			return out
		}
		lastErr = err

		var transient *llm.ErrTransient
		if !errors.As(err, &transient) {
			out := exhaustedOutcome(err)
			out.Attempts = attempts
			return out
		}

		if attempt == budget-1 {
			break
		}

		// Overload policy: advance to the next candidate after a short
		// fixed delay; once the plan is down to its last model, wait
		// longer and retry that model.
		delay := plan.RetryDelay
		if modelIdx < len(plan.Models)-1 {
			modelIdx++
			delay = plan.FallbackDelay
		}

		select {
		case <-ctx.Done():
			out := exhaustedOutcome(ctx.Err())
			out.Attempts = attempts
			return out
		case <-time.After(delay):
		}
	}

	out := exhaustedOutcome(lastErr)
	out.Attempts = attempts
	return out
}

// attempt makes one bounded provider call. A per-attempt timeout that
// fires while the parent context is still live counts as transient: the
// provider was too slow, which the fallback policy can recover from.
func (iv *Invoker) attempt(ctx context.Context, plan Plan, model string, req llm.Request) (*llm.RawResponse, error) {
	actx := ctx
	cancel := func() {}
	if plan.AttemptTimeout > 0 {
		actx, cancel = context.WithTimeout(ctx, plan.AttemptTimeout)
	}
	defer cancel()

	raw, err := iv.provider.Invoke(actx, model, req)
	if err != nil && errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
		err = &llm.ErrTransient{Provider: iv.provider.Name(), Err: err}
	}
	return raw, err
}

// resolveResponse turns a completed provider response into an outcome:
// safety blocks and empty envelopes short-circuit, everything else goes
// through the normalizer.
func resolveResponse(raw *llm.RawResponse) Outcome {
	switch raw.FinishReason {
	case llm.FinishSafety:
		reason := raw.SafetyFeedback
		if reason == "" {
			reason = "content blocked by provider safety filter"
		}
		return blockedOutcome(reason)
	case llm.FinishEmpty:
		return malformedOutcome(raw.Text, errors.New("provider returned no content"))
	}
	return Normalize(raw.Text)
}
