package store

import (
	"context"
	"fmt"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "gemini",
			Model:        fmt.Sprintf("model-%d", i),
			Purpose:      "variant-gen",
			RequestID:    "req-1",
			InputTokens:  100,
			OutputTokens: 50,
			LatencyMs:    int64(200 + i),
			Success:      true,
			FinishReason: "STOP",
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("events = %d, want 3", len(events))
	}

	// Newest first.
	if events[0].Model != "model-2" {
		t.Errorf("first event model = %q, want 'model-2'", events[0].Model)
	}
	for i := 1; i < len(events); i++ {
		if events[i].Sequence >= events[i-1].Sequence {
			t.Errorf("events not in descending sequence order: %d then %d",
				events[i-1].Sequence, events[i].Sequence)
		}
	}

	if events[0].RequestID != "req-1" {
		t.Errorf("request ID = %q", events[0].RequestID)
	}
}

func TestQueryLLMEventsLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "m"}); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
}

func TestGetLLMEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-sonnet-4-5",
		RequestBody:  "[user]\nhello",
		ResponseBody: "hi there",
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}

	e, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil {
		t.Fatal("expected event")
	}
	if e.RequestBody != "[user]\nhello" || e.ResponseBody != "hi there" {
		t.Fatalf("bodies = %q / %q", e.RequestBody, e.ResponseBody)
	}
}

func TestGetLLMEventNotFound(t *testing.T) {
	s := openTestStore(t)

	e, err := s.EventRepo().GetLLMEvent(context.Background(), 9999)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e != nil {
		t.Fatal("expected nil for missing event")
	}
}

func TestLLMUsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appends := []LLMRequestEventData{
		{Purpose: "variant-gen", InputTokens: 100, OutputTokens: 50},
		{Purpose: "variant-gen", InputTokens: 200, OutputTokens: 80},
		{Purpose: "diagnosis", InputTokens: 10, OutputTokens: 5},
	}
	for i, data := range appends {
		data.Provider = "mock"
		data.Model = "m"
		if err := repo.AppendLLMRequest(ctx, data); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	stats, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("purposes = %d, want 2", len(stats))
	}

	byPurpose := map[string]UsageStat{}
	for _, st := range stats {
		byPurpose[st.Purpose] = st
	}
	vg := byPurpose["variant-gen"]
	if vg.Requests != 2 || vg.InputTokens != 300 || vg.OutputTokens != 130 {
		t.Fatalf("variant-gen stat = %+v", vg)
	}
}

func TestAppendGeneration(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendGeneration(ctx, GenerationEventData{
		RequestID:      "req-7",
		QuestionType:   "single-choice",
		Difficulty:     "medium",
		VariationCount: 3,
		Outcome:        "success",
		ItemCount:      3,
		Attempts:       2,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	rows, err := s.Client().GenerationEvent.Query().All(ctx)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	row := rows[0]
	if row.RequestID != "req-7" || row.Outcome != "success" || row.Attempts != 2 {
		t.Fatalf("row = %+v", row)
	}
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "m"}); err != nil {
		t.Fatalf("append llm: %v", err)
	}
	if err := repo.AppendGeneration(ctx, GenerationEventData{RequestID: "r", Outcome: "success"}); err != nil {
		t.Fatalf("append generation: %v", err)
	}
	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "m"}); err != nil {
		t.Fatalf("append llm: %v", err)
	}

	llmRows, err := s.Client().LLMRequestEvent.Query().All(ctx)
	if err != nil {
		t.Fatalf("query llm: %v", err)
	}
	genRows, err := s.Client().GenerationEvent.Query().All(ctx)
	if err != nil {
		t.Fatalf("query generation: %v", err)
	}

	seen := map[int64]bool{}
	for _, r := range llmRows {
		if seen[r.Sequence] {
			t.Fatalf("duplicate sequence %d", r.Sequence)
		}
		seen[r.Sequence] = true
	}
	for _, r := range genRows {
		if seen[r.Sequence] {
			t.Fatalf("duplicate sequence %d across event types", r.Sequence)
		}
		seen[r.Sequence] = true
	}
}
