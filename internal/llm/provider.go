package llm

import "context"

// Provider is the uniform interface over heterogeneous generative-AI
// backends. The model is a per-call argument rather than provider state so
// callers can walk a fallback list without rebuilding clients.
type Provider interface {
	// Invoke sends one prompt pair to the given model and returns the
	// normalized response. Vendor errors are classified into the shared
	// taxonomy in errors.go before being returned.
	Invoke(ctx context.Context, model string, req Request) (*RawResponse, error)

	// Name returns the vendor family name ("gemini", "openai", ...).
	Name() string
}

// Request describes what to send to the model.
type Request struct {
	// System is the system prompt. Sets the model's role and constraints.
	System string

	// User is the user prompt carrying the actual task.
	User string

	// Temperature controls randomness. Zero means vendor default.
	Temperature float64

	// MaxTokens caps the response length. Zero means vendor default.
	MaxTokens int
}

// FinishReason is the common vocabulary all vendor envelopes map into.
type FinishReason string

const (
	// FinishStop means generation completed normally.
	FinishStop FinishReason = "STOP"

	// FinishSafety means the vendor's safety filter blocked the output.
	FinishSafety FinishReason = "SAFETY"

	// FinishEmpty means the vendor returned no usable text.
	FinishEmpty FinishReason = "EMPTY"

	// FinishOther covers truncation and any vendor-specific reason.
	FinishOther FinishReason = "OTHER"
)

// RawResponse holds one attempt's output before normalization. It lives
// only within the scope of a single attempt.
type RawResponse struct {
	// Text is the plain text extracted from the vendor envelope.
	Text string

	FinishReason FinishReason

	// SafetyFeedback carries the vendor's block reason when
	// FinishReason is FinishSafety.
	SafetyFeedback string

	// CandidateCount is the number of candidates the vendor returned.
	CandidateCount int

	// Usage reports token consumption for this attempt.
	Usage Usage
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
