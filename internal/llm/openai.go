package llm

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIProvider implements Provider using the OpenAI SDK. This is the
// chat-completion style backend: the prompt pair becomes a system message
// plus a user message, and the answer arrives as the first choice.
// OpenRouter and other OpenAI-compatible APIs are supported via BaseURL.
type OpenAIProvider struct {
	client *openai.Client
	name   string
}

// NewOpenAIProvider creates a new OpenAI provider.
func NewOpenAIProvider(cfg OpenAIConfig) (*OpenAIProvider, error) {
	return newOpenAIStyleProvider(cfg, "openai")
}

func newOpenAIStyleProvider(cfg OpenAIConfig, name string) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%s API key is required", name)
	}

	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(config),
		name:   name,
	}, nil
}

func (p *OpenAIProvider) Invoke(ctx context.Context, model string, req Request) (*RawResponse, error) {
	chatReq := openai.ChatCompletionRequest{
		Model:    model,
		Messages: buildOpenAIMessages(req),
	}
	if req.MaxTokens > 0 {
		chatReq.MaxCompletionTokens = req.MaxTokens
	}
	if req.Temperature > 0 {
		chatReq.Temperature = float32(req.Temperature)
	}

	resp, err := p.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, p.mapError(err)
	}

	raw := &RawResponse{
		CandidateCount: len(resp.Choices),
		Usage: Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}

	if len(resp.Choices) == 0 {
		raw.FinishReason = FinishEmpty
		return raw, nil
	}

	choice := resp.Choices[0]
	raw.Text = choice.Message.Content
	raw.FinishReason = mapOpenAIFinishReason(choice.FinishReason)
	if raw.FinishReason == FinishSafety {
		raw.SafetyFeedback = string(choice.FinishReason)
	}
	if raw.Text == "" && raw.FinishReason == FinishStop {
		raw.FinishReason = FinishEmpty
	}

	return raw, nil
}

func (p *OpenAIProvider) Name() string {
	return p.name
}

func buildOpenAIMessages(req Request) []openai.ChatCompletionMessage {
	var messages []openai.ChatCompletionMessage

	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.User,
	})

	return messages
}

func mapOpenAIFinishReason(reason openai.FinishReason) FinishReason {
	switch reason {
	case openai.FinishReasonStop:
		return FinishStop
	case openai.FinishReasonContentFilter:
		return FinishSafety
	case openai.FinishReasonNull, "":
		return FinishEmpty
	default:
		return FinishOther
	}
}

func (p *OpenAIProvider) mapError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return classifyHTTP(p.name, apiErr.HTTPStatusCode, apiErr.Message, err)
	}
	return classifyTransport(p.name, err)
}
