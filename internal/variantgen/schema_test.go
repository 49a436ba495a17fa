package variantgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeItem() GeneratedItem {
	return GeneratedItem{
		Question:        "Solve x = 1.",
		Analysis:        "trivial equation",
		Choices:         nil,
		Answer:          "1",
		SolutionConcept: []string{"read off the value"},
		DetailedSteps:   []string{"x = 1"},
		Difficulty:      DifficultyEasy,
	}
}

func TestValidateResultAccepts(t *testing.T) {
	withChoices := completeItem()
	withChoices.Choices = []string{"1", "2"}

	tests := []struct {
		name   string
		result GenerationResult
	}{
		{"nil choices", GenerationResult{Generated: []GeneratedItem{completeItem()}}},
		{"with choices", GenerationResult{Generated: []GeneratedItem{withChoices}}},
		{"empty array", GenerationResult{Generated: []GeneratedItem{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, validateResult(&tt.result))
		})
	}
}

func TestValidateResultRejectsBadDifficulty(t *testing.T) {
	item := completeItem()
	item.Difficulty = "impossible"

	err := validateResult(&GenerationResult{Generated: []GeneratedItem{item}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation failed")
}

func TestValidateResultRejectsMissingFields(t *testing.T) {
	// Fields the provider omitted decode as nil slices, which marshal to
	// null and violate the array type.
	item := completeItem()
	item.SolutionConcept = nil

	err := validateResult(&GenerationResult{Generated: []GeneratedItem{item}})
	require.Error(t, err)
}
