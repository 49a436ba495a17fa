package variantgen

import (
	"testing"
	"time"
)

func TestBuildPlanSelectsPrimaryByDifficulty(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		difficulty Difficulty
		primary    string
	}{
		{DifficultyEasy, "gemini-2.5-flash-lite"},
		{DifficultyMedium, "gemini-2.5-flash"},
		{DifficultyHard, "gemini-2.5-pro"},
	}

	for _, tt := range tests {
		plan := BuildPlan(cfg, tt.difficulty)
		if plan.Models[0] != tt.primary {
			t.Errorf("%s: primary = %q, want %q", tt.difficulty, plan.Models[0], tt.primary)
		}
	}
}

func TestBuildPlanDeduplicatesPrimary(t *testing.T) {
	// Medium's primary (gemini-2.5-flash) appears in the default fallback
	// list; it must not be tried twice.
	plan := BuildPlan(DefaultConfig(), DifficultyMedium)

	seen := map[string]bool{}
	for _, m := range plan.Models {
		if seen[m] {
			t.Fatalf("model %q appears twice in %v", m, plan.Models)
		}
		seen[m] = true
	}
	if len(plan.Models) != 2 {
		t.Fatalf("models = %v, want primary + one distinct fallback", plan.Models)
	}
}

func TestBuildPlanUnknownDifficultyUsesMedium(t *testing.T) {
	plan := BuildPlan(DefaultConfig(), Difficulty("weird"))
	if plan.Models[0] != "gemini-2.5-flash" {
		t.Fatalf("primary = %q, want medium's model", plan.Models[0])
	}
}

func TestMaxAttempts(t *testing.T) {
	tests := []struct {
		name    string
		models  int
		retries int
		want    int
	}{
		{"three models two retries", 3, 2, 4},
		{"one model two retries", 1, 2, 2},
		{"one model no retries", 1, 0, 1},
		{"no retries two models", 2, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Plan{Models: make([]string, tt.models), MaxRetries: tt.retries}
			if got := p.maxAttempts(); got != tt.want {
				t.Fatalf("maxAttempts = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMaxLatency(t *testing.T) {
	p := Plan{
		Models:         []string{"a", "b"},
		MaxRetries:     1,
		AttemptTimeout: 10 * time.Second,
		FallbackDelay:  1 * time.Second,
		RetryDelay:     2 * time.Second,
	}
	// 2 attempts of 10s plus 1 inter-attempt delay of max(1s, 2s).
	want := 22 * time.Second
	if got := p.MaxLatency(); got != want {
		t.Fatalf("max latency = %v, want %v", got, want)
	}
}
