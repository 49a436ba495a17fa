package variantgen

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// maxDiagnosticLen caps the raw-text excerpt attached to Malformed
// outcomes. The full response never travels upstream.
const maxDiagnosticLen = 500

// formulaSpanRe matches inline MathJax spans: a backslash-opened bracket
// pair with a non-greedy body, i.e. \(..\) and \[..\]. Providers routinely
// emit single backslashes inside these spans, which breaks JSON string
// escaping; isolating the spans before parsing sidesteps that corruption.
// This is a bounded heuristic for exactly that pattern, not a tolerant
// JSON parser.
var formulaSpanRe = regexp.MustCompile(`\\[(\[].*?\\[)\]]`)

// Normalize parses raw provider text into a GenerationResult. Restricted
// to Success and Malformed outcomes; it never talks to the provider.
func Normalize(rawText string) Outcome {
	text := stripFences(rawText)

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || start > end {
		return malformedOutcome(rawText, errors.New("response contains no JSON object"))
	}
	jsonText := text[start : end+1]

	var tree any
	if err := json.Unmarshal([]byte(jsonText), &tree); err != nil {
		repaired, rerr := repairFormulaSpans(jsonText)
		if rerr != nil {
			// Surface the original parse error; the repair failure is
			// secondary.
			return malformedOutcome(rawText, err)
		}
		tree = repaired
	}

	result, err := resultFromTree(tree)
	if err != nil {
		return malformedOutcome(rawText, err)
	}
	return successOutcome(result)
}

// stripFences removes markdown code-fence markers the provider may wrap
// the payload in.
func stripFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

// repairFormulaSpans replaces every formula-like span with a unique
// placeholder token, re-attempts the parse, and substitutes the original
// spans back into all string values of the parsed tree.
func repairFormulaSpans(jsonText string) (any, error) {
	tokens := make(map[string]string)
	i := 0
	replaced := formulaSpanRe.ReplaceAllStringFunc(jsonText, func(span string) string {
		tok := fmt.Sprintf("⟪F%d⟫", i) // never appears in provider output
		tokens[tok] = span
		i++
		return tok
	})

	if len(tokens) == 0 {
		return nil, errors.New("no formula spans to isolate")
	}

	var tree any
	if err := json.Unmarshal([]byte(replaced), &tree); err != nil {
		return nil, err
	}
	return restoreSpans(tree, tokens), nil
}

// restoreSpans walks the parsed tree and substitutes placeholder tokens
// back into every string value, recursively through arrays and objects.
func restoreSpans(v any, tokens map[string]string) any {
	switch t := v.(type) {
	case string:
		if !strings.Contains(t, "⟪") {
			return t
		}
		for tok, span := range tokens {
			t = strings.ReplaceAll(t, tok, span)
		}
		return t
	case []any:
		for i := range t {
			t[i] = restoreSpans(t[i], tokens)
		}
		return t
	case map[string]any:
		for k, vv := range t {
			t[k] = restoreSpans(vv, tokens)
		}
		return t
	default:
		return v
	}
}

// resultFromTree validates the top-level shape and converts the tree into
// the typed result. Items missing individual fields pass through as-is.
func resultFromTree(tree any) (*GenerationResult, error) {
	obj, ok := tree.(map[string]any)
	if !ok {
		return nil, errors.New("top-level JSON value is not an object")
	}

	gen, ok := obj["generated"]
	if !ok {
		return nil, errors.New(`response object has no "generated" field`)
	}
	if _, ok := gen.([]any); !ok {
		return nil, errors.New(`"generated" is not an array`)
	}

	// Re-encode and decode into the typed shape. Encoding escapes the
	// restored formula backslashes correctly, so the round trip
	// preserves span content exactly.
	buf, err := json.Marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("re-encode repaired tree: %w", err)
	}
	var result GenerationResult
	if err := json.Unmarshal(buf, &result); err != nil {
		return nil, fmt.Errorf("decode generation result: %w", err)
	}
	return &result, nil
}

func excerpt(s string) string {
	if len(s) <= maxDiagnosticLen {
		return s
	}
	// ToValidUTF8 drops the trailing partial rune the cut may leave.
	return strings.ToValidUTF8(s[:maxDiagnosticLen], "")
}
