package llm

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ianleeapple/Online-Math-Dictionary/internal/store"
)

// LoggingProvider is a decorator that records every provider attempt as an
// event. One generation run with fallbacks produces several events sharing
// a request ID.
type LoggingProvider struct {
	inner     Provider
	eventRepo store.EventRepo
}

// WithLogging wraps a Provider with event logging.
func WithLogging(p Provider, repo store.EventRepo) Provider {
	return &LoggingProvider{inner: p, eventRepo: repo}
}

func (l *LoggingProvider) Invoke(ctx context.Context, model string, req Request) (*RawResponse, error) {
	start := time.Now()

	resp, err := l.inner.Invoke(ctx, model, req)

	data := store.LLMRequestEventData{
		Provider:    l.inner.Name(),
		Model:       model,
		Purpose:     PurposeFrom(ctx),
		RequestID:   RequestIDFrom(ctx),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: serializeRequest(req),
	}

	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.FinishReason = string(resp.FinishReason)
		data.ResponseBody = resp.Text
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// Log the event but don't fail the request if logging fails.
	if logErr := l.eventRepo.AppendLLMRequest(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM request event: %v\n", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) Name() string {
	return l.inner.Name()
}

// serializeRequest builds a readable representation of the request.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}
	b.WriteString("[user]\n")
	b.WriteString(req.User)
	b.WriteString("\n")

	return b.String()
}
