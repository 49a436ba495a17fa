package llm

import (
	"context"
	"sync"
)

// MockResponse is a canned response for the MockProvider.
type MockResponse struct {
	Text         string
	FinishReason FinishReason
	Feedback     string
	Usage        Usage
	Err          error
}

// MockCall records one Invoke call for assertions.
type MockCall struct {
	Model   string
	Request Request
}

// MockProvider is a deterministic Provider for testing. It returns canned
// responses in FIFO order and records all calls, including which model each
// attempt targeted.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	Calls     []MockCall
}

// NewMockProvider creates a MockProvider with the given canned responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

// Invoke returns the next canned response, or ErrTransient if the queue is
// empty.
func (m *MockProvider) Invoke(ctx context.Context, model string, req Request) (*RawResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, MockCall{Model: model, Request: req})

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if len(m.responses) == 0 {
		return nil, &ErrTransient{Provider: "mock"}
	}

	resp := m.responses[0]
	m.responses = m.responses[1:]

	if resp.Err != nil {
		return nil, resp.Err
	}

	finish := resp.FinishReason
	if finish == "" {
		finish = FinishStop
	}

	return &RawResponse{
		Text:           resp.Text,
		FinishReason:   finish,
		SafetyFeedback: resp.Feedback,
		CandidateCount: 1,
		Usage:          resp.Usage,
	}, nil
}

// Name returns "mock".
func (m *MockProvider) Name() string {
	return "mock"
}

// AddResponse appends a canned response to the queue.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount returns the number of Invoke calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// Models returns the model targeted by each recorded call, in order.
func (m *MockProvider) Models() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.Calls))
	for i, c := range m.Calls {
		out[i] = c.Model
	}
	return out
}
