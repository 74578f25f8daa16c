package predict

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// artifactSchema describes the on-disk model artifact format.
var artifactSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"version": map[string]any{
			"type":    "integer",
			"minimum": 1,
		},
		"nodes": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"leaf":      map[string]any{"type": "boolean"},
					"label":     map[string]any{"type": "integer", "enum": []any{0, 1}},
					"feature":   map[string]any{"type": "integer", "minimum": 0, "maximum": 2},
					"threshold": map[string]any{"type": "number"},
					"left":      map[string]any{"type": "integer", "minimum": 0},
					"right":     map[string]any{"type": "integer", "minimum": 0},
				},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"version", "nodes"},
	"additionalProperties": false,
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateArtifact checks raw JSON against the artifact schema.
func validateArtifact(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("model artifact is not valid JSON: %w", err)
	}

	schema, err := compiled()
	if err != nil {
		return fmt.Errorf("compile artifact schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("model artifact failed schema validation: %w", err)
	}
	return nil
}

func compiled() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library wants a parsed JSON value, so round-trip
		// the definition through encoding/json.
		defBytes, err := json.Marshal(artifactSchema)
		if err != nil {
			compileErr = err
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = err
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://quiz-model.json"
		if err := c.AddResource(url, defParsed); err != nil {
			compileErr = err
			return
		}
		compiledSchema, compileErr = c.Compile(url)
	})
	return compiledSchema, compileErr
}
