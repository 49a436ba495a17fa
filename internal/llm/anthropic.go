package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// The Anthropic API requires an explicit max_tokens on every request.
// Used when the caller leaves MaxTokens unset.
const anthropicDefaultMaxTokens = 4096

// AnthropicProvider implements Provider using the Anthropic SDK.
// Chat-completion style: system prompt in a dedicated slot, user prompt as
// a message, text in content blocks.
type AnthropicProvider struct {
	client *anthropic.Client
}

// NewAnthropicProvider creates a new Anthropic provider.
func NewAnthropicProvider(cfg AnthropicConfig) (*AnthropicProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("anthropic API key is required")
	}

	client := anthropic.NewClient(option.WithAPIKey(cfg.APIKey))

	return &AnthropicProvider{client: &client}, nil
}

func (p *AnthropicProvider) Invoke(ctx context.Context, model string, req Request) (*RawResponse, error) {
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = anthropicDefaultMaxTokens
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: int64(maxTokens),
		Messages: []anthropic.MessageParam{
			{
				Role: anthropic.MessageParamRoleUser,
				Content: []anthropic.ContentBlockParamUnion{
					anthropic.NewTextBlock(req.User),
				},
			},
		},
	}

	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}
	if req.Temperature > 0 {
		params.Temperature = anthropic.Float(req.Temperature)
	}

	msg, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return nil, mapAnthropicError(err)
	}

	raw := &RawResponse{
		Text:           extractAnthropicText(msg),
		CandidateCount: 1,
		Usage: Usage{
			InputTokens:  int(msg.Usage.InputTokens),
			OutputTokens: int(msg.Usage.OutputTokens),
			TotalTokens:  int(msg.Usage.InputTokens + msg.Usage.OutputTokens),
		},
	}

	switch msg.StopReason {
	case "end_turn", "stop_sequence":
		raw.FinishReason = FinishStop
	case "refusal":
		raw.FinishReason = FinishSafety
		raw.SafetyFeedback = string(msg.StopReason)
	default:
		raw.FinishReason = FinishOther
	}

	if raw.Text == "" {
		raw.CandidateCount = 0
		if raw.FinishReason == FinishStop {
			raw.FinishReason = FinishEmpty
		}
	}

	return raw, nil
}

func (p *AnthropicProvider) Name() string {
	return "anthropic"
}

func extractAnthropicText(msg *anthropic.Message) string {
	for _, block := range msg.Content {
		if block.Type == "text" {
			return block.Text
		}
	}
	return ""
}

func mapAnthropicError(err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		return classifyHTTP("anthropic", apiErr.StatusCode, apiErr.Error(), err)
	}
	return classifyTransport("anthropic", err)
}
