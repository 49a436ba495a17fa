package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LLMRequestEventData captures one provider attempt.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	RequestID    string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	FinishReason string
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is the stored form returned by queries.
type LLMRequestEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// GenerationEventData captures one logical generation run.
type GenerationEventData struct {
	RequestID      string
	QuestionType   string
	Difficulty     string
	VariationCount int
	Outcome        string
	ItemCount      int
	Attempts       int
}

// UsageStat aggregates token consumption for one purpose label.
type UsageStat struct {
	Purpose      string
	Requests     int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records one provider attempt.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AppendGeneration records one generation run.
	AppendGeneration(ctx context.Context, data GenerationEventData) error

	// QueryLLMEvents returns recent attempts, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// GetLLMEvent returns one attempt by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]UsageStat, error)
}
