package variantgen

import (
	"errors"
	"strings"
	"testing"
)

func promptRequest() GenerationRequest {
	return GenerationRequest{
		SourceTemplate: "A right triangle has legs 3 and 4. Find the hypotenuse.",
		QuestionType:   TypeSingleChoice,
		Difficulty:     DifficultyMedium,
		VariationCount: 3,
	}
}

func TestBuildPromptsRequiresTemplate(t *testing.T) {
	req := promptRequest()
	req.SourceTemplate = "   "

	_, err := BuildPrompts(req)
	if err == nil {
		t.Fatal("expected error for blank template")
	}
	var invalid *InvalidRequestError
	if !errors.As(err, &invalid) {
		t.Fatalf("error type = %T", err)
	}
	if invalid.Field != "sourceTemplate" {
		t.Fatalf("field = %q", invalid.Field)
	}
}

func TestBuildPromptsDeterministic(t *testing.T) {
	req := promptRequest()

	a, err := BuildPrompts(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := BuildPrompts(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a != b {
		t.Fatal("identical requests produced different prompts")
	}
}

func TestBuildPromptsEmbedsRequestFields(t *testing.T) {
	req := promptRequest()
	req.OptionsTemplate = "(A) 5 (B) 6 (C) 7 (D) 8"
	req.Constraints = "keep all side lengths integral"

	p, err := BuildPrompts(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(p.System, "3 derivative problems") {
		t.Error("system prompt does not carry the variant count")
	}

	for _, want := range []string{
		req.SourceTemplate,
		"single-choice",
		"medium",
		req.OptionsTemplate,
		req.Constraints,
	} {
		if !strings.Contains(p.User, want) {
			t.Errorf("user prompt missing %q", want)
		}
	}
}

func TestBuildPromptsOutputContract(t *testing.T) {
	p, err := BuildPrompts(promptRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Every wire field must be spelled out for the provider.
	for _, field := range []string{
		`"question"`, `"analysis"`, `"choices"`, `"answer"`,
		`"solution_concept"`, `"detailed_steps"`, `"difficulty"`,
	} {
		if !strings.Contains(p.User, field) {
			t.Errorf("output contract missing field %s", field)
		}
	}

	if !strings.Contains(p.User, "double backslash") {
		t.Error("formula escaping rule missing from user prompt")
	}
	if !strings.Contains(p.User, "WITHOUT any leading numbering") {
		t.Error("no-enumeration rule missing from user prompt")
	}
}

func TestBuildPromptsNonChoicePlaceholders(t *testing.T) {
	req := promptRequest()
	req.QuestionType = TypeFillBlank

	p, err := BuildPrompts(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(p.User, "Not a multiple-choice template") {
		t.Error("missing non-choice placeholder line")
	}
	if !strings.Contains(p.User, "No special constraints") {
		t.Error("missing no-constraints placeholder line")
	}
}
