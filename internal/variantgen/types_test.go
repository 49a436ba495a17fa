package variantgen

import (
	"errors"
	"testing"
)

func TestGenerationRequestValidate(t *testing.T) {
	valid := GenerationRequest{
		SourceTemplate: "t",
		QuestionType:   TypeOpen,
		Difficulty:     DifficultyHard,
		VariationCount: 1,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name      string
		mutate    func(*GenerationRequest)
		wantField string
	}{
		{"unknown type", func(r *GenerationRequest) { r.QuestionType = "essay" }, "questionType"},
		{"empty type", func(r *GenerationRequest) { r.QuestionType = "" }, "questionType"},
		{"unknown difficulty", func(r *GenerationRequest) { r.Difficulty = "extreme" }, "difficulty"},
		{"zero count", func(r *GenerationRequest) { r.VariationCount = 0 }, "variationCount"},
		{"negative count", func(r *GenerationRequest) { r.VariationCount = -2 }, "variationCount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := req.Validate()
			var invalid *InvalidRequestError
			if !errors.As(err, &invalid) {
				t.Fatalf("error = %v, want InvalidRequestError", err)
			}
			if invalid.Field != tt.wantField {
				t.Fatalf("field = %q, want %q", invalid.Field, tt.wantField)
			}
		})
	}
}

func TestQuestionTypeIsChoice(t *testing.T) {
	tests := []struct {
		qt   QuestionType
		want bool
	}{
		{TypeSingleChoice, true},
		{TypeMultiChoice, true},
		{TypeFillBlank, false},
		{TypeOpen, false},
	}
	for _, tt := range tests {
		if got := tt.qt.IsChoice(); got != tt.want {
			t.Errorf("%s.IsChoice() = %v, want %v", tt.qt, got, tt.want)
		}
	}
}
