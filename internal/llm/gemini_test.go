package llm

import (
	"testing"

	"google.golang.org/genai"
)

func geminiCandidate(text string, finish genai.FinishReason) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []*genai.Part{{Text: text}},
				},
				FinishReason: finish,
			},
		},
	}
}

func TestExtractGeminiResponseStop(t *testing.T) {
	resp := extractGeminiResponse(geminiCandidate(`{"generated":[]}`, "STOP"))

	if resp.FinishReason != FinishStop {
		t.Fatalf("finish = %q, want %q", resp.FinishReason, FinishStop)
	}
	if resp.Text != `{"generated":[]}` {
		t.Fatalf("text = %q", resp.Text)
	}
	if resp.CandidateCount != 1 {
		t.Fatalf("candidate count = %d, want 1", resp.CandidateCount)
	}
}

func TestExtractGeminiResponseSafetyFinish(t *testing.T) {
	for _, reason := range []genai.FinishReason{"SAFETY", "PROHIBITED_CONTENT", "BLOCKLIST"} {
		resp := extractGeminiResponse(geminiCandidate("", reason))
		if resp.FinishReason != FinishSafety {
			t.Errorf("finish reason %q: got %q, want %q", reason, resp.FinishReason, FinishSafety)
		}
		if resp.SafetyFeedback == "" {
			t.Errorf("finish reason %q: safety feedback is empty", reason)
		}
	}
}

func TestExtractGeminiResponsePromptBlock(t *testing.T) {
	result := &genai.GenerateContentResponse{
		PromptFeedback: &genai.GenerateContentResponsePromptFeedback{
			BlockReason:        "SAFETY",
			BlockReasonMessage: "prompt blocked",
		},
	}

	resp := extractGeminiResponse(result)
	if resp.FinishReason != FinishSafety {
		t.Fatalf("finish = %q, want %q", resp.FinishReason, FinishSafety)
	}
	if resp.SafetyFeedback != "prompt blocked" {
		t.Fatalf("feedback = %q", resp.SafetyFeedback)
	}
	if resp.CandidateCount != 0 {
		t.Fatalf("candidate count = %d, want 0", resp.CandidateCount)
	}
}

func TestExtractGeminiResponseNoCandidates(t *testing.T) {
	resp := extractGeminiResponse(&genai.GenerateContentResponse{})
	if resp.FinishReason != FinishEmpty {
		t.Fatalf("finish = %q, want %q", resp.FinishReason, FinishEmpty)
	}
}

func TestExtractGeminiResponseEmptyTextWithStop(t *testing.T) {
	resp := extractGeminiResponse(geminiCandidate("", "STOP"))
	if resp.FinishReason != FinishEmpty {
		t.Fatalf("finish = %q, want %q", resp.FinishReason, FinishEmpty)
	}
}

func TestExtractGeminiResponseUnknownFinish(t *testing.T) {
	resp := extractGeminiResponse(geminiCandidate("partial", "MAX_TOKENS"))
	if resp.FinishReason != FinishOther {
		t.Fatalf("finish = %q, want %q", resp.FinishReason, FinishOther)
	}
}
