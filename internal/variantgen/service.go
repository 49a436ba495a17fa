package variantgen

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/ianleeapple/Online-Math-Dictionary/internal/costguard"
	"github.com/ianleeapple/Online-Math-Dictionary/internal/llm"
	"github.com/ianleeapple/Online-Math-Dictionary/internal/store"
)

// Service is the inbound boundary of the generation core. The route layer
// (out of scope here) calls Generate and maps the Outcome to HTTP statuses.
type Service struct {
	provider llm.Provider
	invoker  *Invoker
	cfg      Config
	events   store.EventRepo
}

// NewService creates a Service. events may be nil to disable the event log.
func NewService(provider llm.Provider, cfg Config, events store.EventRepo) *Service {
	return &Service{
		provider: provider,
		invoker:  NewInvoker(provider),
		cfg:      cfg,
		events:   events,
	}
}

// Generate runs one full generation: validate, build prompts and plan,
// drive the resilient invocation, post-validate, record. The error return
// covers caller mistakes only; every provider-side failure resolves to an
// Outcome variant.
func (s *Service) Generate(ctx context.Context, req GenerationRequest) (Outcome, error) {
	if err := req.Validate(); err != nil {
		return Outcome{}, err
	}
	prompts, err := BuildPrompts(req)
	if err != nil {
		return Outcome{}, err
	}

	requestID := uuid.NewString()
	ctx = llm.WithRequestID(ctx, requestID)
	ctx = llm.WithPurpose(ctx, "variant-gen")

	s.checkBudget(prompts)

	plan := BuildPlan(s.cfg, req.Difficulty)
	out := s.invoker.Run(ctx, plan, prompts)

	if out.Status == OutcomeSuccess && s.cfg.StrictValidate {
		if verr := validateResult(out.Result); verr != nil {
			m := malformedOutcome("", verr)
			m.Attempts = out.Attempts
			out = m
		}
	}

	s.appendEvent(ctx, requestID, req, out)
	return out, nil
}

// checkBudget is the advisory cost-guard hook: it estimates the request
// against the static per-request maxima and warns when exceeded. Daily
// budget enforcement against persistent counters belongs to the calling
// layer.
func (s *Service) checkBudget(prompts PromptPair) {
	tokens := costguard.ApproxTokens(prompts.System + prompts.User)
	if s.cfg.MaxTokens > 0 {
		tokens += s.cfg.MaxTokens
	} else {
		tokens += costguard.MaxScriptTokens
	}
	if tokens > costguard.MaxScriptTokens {
		est := costguard.EstimateCost(0, tokens)
		fmt.Fprintf(os.Stderr,
			"warning: generation request estimated at %d tokens (limit %d), ~$%.4f USD\n",
			tokens, costguard.MaxScriptTokens, est.Total)
	}
}

func (s *Service) appendEvent(ctx context.Context, requestID string, req GenerationRequest, out Outcome) {
	if s.events == nil {
		return
	}

	data := store.GenerationEventData{
		RequestID:      requestID,
		QuestionType:   string(req.QuestionType),
		Difficulty:     string(req.Difficulty),
		VariationCount: req.VariationCount,
		Outcome:        string(out.Status),
		Attempts:       out.Attempts,
	}
	if out.Result != nil {
		data.ItemCount = len(out.Result.Generated)
	}

	if err := s.events.AppendGeneration(ctx, data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log generation event: %v\n", err)
	}
}
