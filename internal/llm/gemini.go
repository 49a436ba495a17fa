package llm

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// GeminiProvider implements Provider using the Google Gemini SDK.
// This is the "generate content" style backend: system instruction and user
// content travel in separate envelope slots, and safety feedback arrives on
// the prompt feedback or candidate finish reason.
type GeminiProvider struct {
	client *genai.Client
}

// NewGeminiProvider creates a new Gemini provider.
func NewGeminiProvider(ctx context.Context, cfg GeminiConfig) (*GeminiProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	return &GeminiProvider{client: client}, nil
}

func (p *GeminiProvider) Invoke(ctx context.Context, model string, req Request) (*RawResponse, error) {
	config := &genai.GenerateContentConfig{}

	if req.MaxTokens > 0 {
		config.MaxOutputTokens = int32(req.MaxTokens)
	}
	if req.Temperature > 0 {
		temp := float32(req.Temperature)
		config.Temperature = &temp
	}
	if req.System != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.System}},
		}
	}

	contents := []*genai.Content{
		{Role: "user", Parts: []*genai.Part{{Text: req.User}}},
	}

	result, err := p.client.Models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return nil, mapGeminiError(err)
	}

	resp := extractGeminiResponse(result)

	if result.UsageMetadata != nil {
		resp.Usage = Usage{
			InputTokens:  int(result.UsageMetadata.PromptTokenCount),
			OutputTokens: int(result.UsageMetadata.CandidatesTokenCount),
			TotalTokens:  int(result.UsageMetadata.TotalTokenCount),
		}
	}

	return resp, nil
}

func (p *GeminiProvider) Name() string {
	return "gemini"
}

// extractGeminiResponse flattens the Gemini envelope into the common
// RawResponse shape, detecting safety blocks and empty results.
func extractGeminiResponse(result *genai.GenerateContentResponse) *RawResponse {
	resp := &RawResponse{CandidateCount: len(result.Candidates)}

	// A prompt-level block carries no candidates at all.
	if result.PromptFeedback != nil && result.PromptFeedback.BlockReason != "" {
		resp.FinishReason = FinishSafety
		resp.SafetyFeedback = string(result.PromptFeedback.BlockReason)
		if result.PromptFeedback.BlockReasonMessage != "" {
			resp.SafetyFeedback = result.PromptFeedback.BlockReasonMessage
		}
		return resp
	}

	if len(result.Candidates) == 0 {
		resp.FinishReason = FinishEmpty
		return resp
	}

	cand := result.Candidates[0]
	resp.Text = result.Text()

	switch cand.FinishReason {
	case "STOP":
		resp.FinishReason = FinishStop
	case "SAFETY", "PROHIBITED_CONTENT", "BLOCKLIST":
		resp.FinishReason = FinishSafety
		resp.SafetyFeedback = string(cand.FinishReason)
	default:
		resp.FinishReason = FinishOther
	}

	if resp.Text == "" && resp.FinishReason == FinishStop {
		resp.FinishReason = FinishEmpty
	}

	return resp
}

func mapGeminiError(err error) error {
	var apiErr *genai.APIError
	if errors.As(err, &apiErr) {
		return classifyHTTP("gemini", apiErr.Code, apiErr.Message, err)
	}
	return classifyTransport("gemini", err)
}
