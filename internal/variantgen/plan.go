package variantgen

import "time"

// Plan is the immutable invocation plan for one generation run: the
// ordered candidate models, the attempt budget, and the fixed delays.
// Built per request, stateless and rebuildable.
type Plan struct {
	// Models holds the candidates in try order. The first entry is the
	// difficulty-appropriate primary; the rest are the configured
	// fallbacks.
	Models []string

	MaxRetries     int
	AttemptTimeout time.Duration
	FallbackDelay  time.Duration
	RetryDelay     time.Duration

	Temperature float64
	MaxTokens   int
}

// BuildPlan derives the plan for a difficulty from configuration. The
// primary model is removed from the fallback tail if it appears there, so
// no candidate is tried twice in one walk.
func BuildPlan(cfg Config, d Difficulty) Plan {
	primary := cfg.PrimaryModels[d]
	if primary == "" {
		primary = cfg.PrimaryModels[DifficultyMedium]
	}

	models := []string{primary}
	for _, m := range cfg.FallbackModels {
		if m != primary {
			models = append(models, m)
		}
	}

	return Plan{
		Models:         models,
		MaxRetries:     cfg.MaxRetries,
		AttemptTimeout: cfg.AttemptTimeout,
		FallbackDelay:  cfg.FallbackDelay,
		RetryDelay:     cfg.RetryDelay,
		Temperature:    cfg.Temperature,
		MaxTokens:      cfg.MaxTokens,
	}
}

// maxAttempts is the total provider-call budget for one run: the fallback
// walk plus the configured retries, never less than one.
func (p Plan) maxAttempts() int {
	budget := p.MaxRetries + len(p.Models) - 1
	if budget < 1 {
		budget = 1
	}
	return budget
}

// MaxLatency is the documented worst-case duration of a run: every attempt
// timing out plus every inter-attempt delay.
func (p Plan) MaxLatency() time.Duration {
	attempts := p.maxAttempts()
	delay := p.FallbackDelay
	if p.RetryDelay > delay {
		delay = p.RetryDelay
	}
	return time.Duration(attempts)*p.AttemptTimeout + time.Duration(attempts-1)*delay
}
