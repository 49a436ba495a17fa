package variantgen

// QuestionType describes how a generated problem is answered.
type QuestionType string

const (
	TypeSingleChoice QuestionType = "single-choice"
	TypeMultiChoice  QuestionType = "multi-choice"
	TypeFillBlank    QuestionType = "fill-blank"
	TypeOpen         QuestionType = "open"
)

// IsChoice reports whether the type carries a choices array.
func (t QuestionType) IsChoice() bool {
	return t == TypeSingleChoice || t == TypeMultiChoice
}

func (t QuestionType) valid() bool {
	switch t {
	case TypeSingleChoice, TypeMultiChoice, TypeFillBlank, TypeOpen:
		return true
	}
	return false
}

// Difficulty is the closed difficulty set shared with the frontend.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// GenerationRequest describes one logical "generate variants" call.
// Created per request, never persisted.
type GenerationRequest struct {
	// SourceTemplate is the original problem the variants derive from.
	// Required.
	SourceTemplate string

	QuestionType QuestionType
	Difficulty   Difficulty

	// VariationCount is how many variants to generate. Must be >= 1.
	VariationCount int

	// OptionsTemplate optionally shows the provider what the choice
	// options of the template problem look like.
	OptionsTemplate string

	// Constraints optionally narrows the generation (topic bounds,
	// number ranges, concepts to combine).
	Constraints string
}

// Validate checks the closed-set and range invariants. The missing-template
// case is reported by BuildPrompts, which owns that contract.
func (r GenerationRequest) Validate() error {
	if !r.QuestionType.valid() {
		return &InvalidRequestError{Field: "questionType", Reason: "unknown question type"}
	}
	if !r.Difficulty.valid() {
		return &InvalidRequestError{Field: "difficulty", Reason: "must be easy, medium or hard"}
	}
	if r.VariationCount < 1 {
		return &InvalidRequestError{Field: "variationCount", Reason: "must be at least 1"}
	}
	return nil
}

// InvalidRequestError is a caller error. Never retried.
type InvalidRequestError struct {
	Field  string
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return "invalid generation request: " + e.Field + ": " + e.Reason
}

// PromptPair is the system/user prompt pair sent to the provider.
// Immutable once built; depends only on the GenerationRequest.
type PromptPair struct {
	System string
	User   string
}

// GeneratedItem is one variant problem as returned by the provider. JSON
// tags match the wire shape the frontend consumes. Field presence is not
// enforced item-by-item here; the shape contract is advisory and the caller
// re-validates what it needs (StrictValidate in Config opts into schema
// enforcement).
type GeneratedItem struct {
	// Question is the full problem text.
	Question string `json:"question"`

	// Analysis explains which concept the problem tests.
	Analysis string `json:"analysis"`

	// Choices is nil for non-choice question types.
	Choices []string `json:"choices"`

	// Answer is the correct answer.
	Answer string `json:"answer"`

	// SolutionConcept lists the conceptual steps: which theorem or
	// formula applies and in what order.
	SolutionConcept []string `json:"solution_concept"`

	// DetailedSteps lists the worked calculation steps. Entries carry no
	// leading enumeration markers; the frontend numbers them.
	DetailedSteps []string `json:"detailed_steps"`

	Difficulty Difficulty `json:"difficulty"`
}

// GenerationResult is the unit returned to the external caller.
type GenerationResult struct {
	Generated []GeneratedItem `json:"generated"`
}
