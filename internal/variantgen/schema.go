package variantgen

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// resultSchemaDef is the JSON Schema for a full generation payload. Only
// consulted when Config.StrictValidate is on; the default path stays
// lenient like the original platform.
var resultSchemaDef = map[string]any{
	"type":     "object",
	"required": []any{"generated"},
	"properties": map[string]any{
		"generated": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"question", "analysis", "answer", "solution_concept", "detailed_steps", "difficulty"},
				"properties": map[string]any{
					"question": map[string]any{"type": "string"},
					"analysis": map[string]any{"type": "string"},
					"choices": map[string]any{
						"type":  []any{"array", "null"},
						"items": map[string]any{"type": "string"},
					},
					"answer":           map[string]any{"type": "string"},
					"solution_concept": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					"detailed_steps":   map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					"difficulty": map[string]any{
						"type": "string",
						"enum": []any{"easy", "medium", "hard"},
					},
				},
			},
		},
	},
}

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// validateResult checks a successful payload against the result schema.
// Returns nil when the payload conforms.
func validateResult(result *GenerationResult) error {
	schemaOnce.Do(compileResultSchema)
	if schemaErr != nil {
		return fmt.Errorf("compile result schema: %w", schemaErr)
	}

	// The validator expects a parsed JSON value, not a typed struct.
	buf, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	var parsed any
	if err := json.Unmarshal(buf, &parsed); err != nil {
		return fmt.Errorf("parse result: %w", err)
	}

	if err := compiledSchema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

func compileResultSchema() {
	// Round-trip the definition so the compiler sees a clean any tree.
	defBytes, err := json.Marshal(resultSchemaDef)
	if err != nil {
		schemaErr = err
		return
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		schemaErr = err
		return
	}

	c := jsonschema.NewCompiler()
	const schemaURL = "schema://generation-result.json"
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		schemaErr = err
		return
	}
	compiledSchema, schemaErr = c.Compile(schemaURL)
}
