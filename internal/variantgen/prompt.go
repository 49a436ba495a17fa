package variantgen

import (
	"fmt"
	"strings"
)

// The output contract embedded verbatim in every user prompt. The provider
// is told the exact schema to emit because transport is plain JSON text,
// not a native structured-output channel.
const outputContract = `Return all generated problems as a single JSON object whose root has an array named "generated". Every problem object in the array must contain exactly these fields:
- "question": (string) the full problem text.
- "analysis": (string) what mathematical concept the problem tests.
- "choices": (array of strings, or null) the answer options. Use null for non-choice problems.
- "answer": (string) the correct answer.
- "solution_concept": (array of strings) the conceptual solution steps, naming the theorem or formula applied and the order of reasoning, e.g. "Use the Pythagorean theorem to find the hypotenuse, then compute the perimeter".
- "detailed_steps": (array of strings) the fully worked calculation: state the governing formula, define every variable from the problem, substitute the values, then compute step by step to the final result. Each entry must be plain text WITHOUT any leading numbering or bullet marker such as '1.', 'a.' or '*'; the frontend adds numbering itself. Do not repeat a variable name when defining and using it in the same step.
- "difficulty": (string) one of 'easy', 'medium', 'hard'.`

const formulaRules = `Formula and symbol rules:
- Every mathematical variable, fraction, radical, exponent or summation must use MathJax notation, e.g. \(x^2 + y^2 = z^2\) or \[\frac{a}{b}\].
- Plain addition, subtraction, multiplication and division use the ASCII operators +, -, *, / directly, never \plus, \minus, \times or \div.
- IMPORTANT: inside JSON strings every backslash must be escaped as a double backslash: write \\( instead of \(, and \\frac instead of \frac.`

// BuildPrompts assembles the system/user prompt pair for a request.
// Deterministic and side-effect free: identical requests yield identical
// pairs. Fails only when the source template is missing.
func BuildPrompts(req GenerationRequest) (PromptPair, error) {
	if strings.TrimSpace(req.SourceTemplate) == "" {
		return PromptPair{}, &InvalidRequestError{Field: "sourceTemplate", Reason: "required"}
	}

	system := fmt.Sprintf(
		"You are a senior mathematics exam author and textbook writer who designs discriminating, pedagogically meaningful problems. Your task is to take the user's template problem and generate %d derivative problems that are highly similar on the surface but differ in their solving core.",
		req.VariationCount)

	var b strings.Builder

	b.WriteString("Generate problems from the following information.\n\n")
	b.WriteString("Original template problem:\n```\n")
	b.WriteString(req.SourceTemplate)
	b.WriteString("\n```\n\n")

	fmt.Fprintf(&b, "Requirements:\n- Question type: %s\n- Difficulty: %s\n- Number of variants: %d\n",
		req.QuestionType, req.Difficulty, req.VariationCount)

	b.WriteString("\nAdditional constraints:\n")
	if req.OptionsTemplate != "" {
		fmt.Fprintf(&b, "- Choice options template: %s\n", req.OptionsTemplate)
	} else {
		b.WriteString("- Not a multiple-choice template\n")
	}
	if req.Constraints != "" {
		fmt.Fprintf(&b, "- Special constraints: %s\n", req.Constraints)
	} else {
		b.WriteString("- No special constraints\n")
	}

	b.WriteString(`
Core authoring principles:
1. Never substitute numbers alone. Each variant must change the problem structure, scenario, governing formula, or line of reasoning.
2. Extend and vary the concept: move the scenario into physics or daily life, add one or two implicit conditions the student must infer first, ask the question in reverse (derive the original conditions from the answer), or combine a related mathematical concept.
3. For choice problems, distractors must be genuinely confusable: results of common calculation slips, conceptual misunderstandings, or unit errors, not random values.
4. Separate the conceptual solution from the calculation: "solution_concept" explains the line of thought, "detailed_steps" carries the rigorous computation. Both must be precise.
`)
	b.WriteString("\n")
	b.WriteString(formulaRules)
	b.WriteString("\n\n")
	b.WriteString(outputContract)
	b.WriteString("\n\nBegin generating now.")

	return PromptPair{System: system, User: b.String()}, nil
}
