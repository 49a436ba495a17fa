package llm

import (
	"math"
	"testing"
)

func TestLookupCostKnownModel(t *testing.T) {
	c := LookupCost("gemini-2.5-flash")
	if c == nil {
		t.Fatal("expected pricing for gemini-2.5-flash")
	}
	if c.InputPerMTok != 0.3 || c.OutputPerMTok != 2.5 {
		t.Fatalf("pricing = %+v", *c)
	}
}

func TestLookupCostUnknownModel(t *testing.T) {
	if c := LookupCost("totally-made-up-model"); c != nil {
		t.Fatalf("expected nil for unknown model, got %+v", *c)
	}
}

func TestCostCalculation(t *testing.T) {
	c := ModelCost{InputPerMTok: 2, OutputPerMTok: 8}

	// 500k input + 250k output: 0.5*2 + 0.25*8 = 3.
	got := c.Cost(500_000, 250_000)
	if math.Abs(got-3.0) > 1e-9 {
		t.Fatalf("cost = %f, want 3.0", got)
	}

	if got := c.Cost(0, 0); got != 0 {
		t.Fatalf("zero tokens cost = %f, want 0", got)
	}
}
