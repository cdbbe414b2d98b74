package tutor

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// quantitySchema is the {value, unit} shape shared by given entries and
// the student answer.
var quantitySchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"value": map[string]any{"type": "number"},
		"unit":  map[string]any{"type": "string"},
	},
	"required":             []any{"value", "unit"},
	"additionalProperties": false,
}

// solveRequestDefinition is the wire contract for a solve call: exactly
// two given quantities keyed by known names, a target, and an optional
// student answer. Cross-field rules (target not among the given keys)
// are checked semantically after decoding.
var solveRequestDefinition = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"given": map[string]any{
			"type":          "object",
			"minProperties": 2,
			"maxProperties": 2,
			"propertyNames": map[string]any{
				"enum": []any{"mass", "acceleration", "force"},
			},
			"additionalProperties": quantitySchema,
		},
		"target": map[string]any{
			"enum": []any{"mass", "acceleration", "force"},
		},
		"studentAnswer": quantitySchema,
	},
	"required":             []any{"given", "target"},
	"additionalProperties": false,
}

var solveRequestSchema = mustCompileSchema("solve-request", solveRequestDefinition)

// mustCompileSchema compiles a fixed schema definition at package init.
// The definitions are authored in this file, so a failure is a bug.
func mustCompileSchema(name string, definition map[string]any) *jsonschema.Schema {
	// The jsonschema library expects a parsed JSON value (any), not raw bytes.
	// Marshal then unmarshal to get a clean any representation.
	defBytes, err := json.Marshal(definition)
	if err != nil {
		panic(fmt.Sprintf("marshal schema %q: %v", name, err))
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		panic(fmt.Sprintf("parse schema %q: %v", name, err))
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		panic(fmt.Sprintf("add schema %q: %v", name, err))
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		panic(fmt.Sprintf("compile schema %q: %v", name, err))
	}
	return compiled
}

// DecodeRequest validates raw JSON against the request schema and
// decodes it. Every failure comes back as an InvalidInput RequestError.
func DecodeRequest(raw []byte) (*SolveRequest, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &RequestError{
			Kind:    InvalidInput,
			Message: fmt.Sprintf("invalid JSON: %v", err),
			cause:   err,
		}
	}
	if err := solveRequestSchema.Validate(parsed); err != nil {
		return nil, &RequestError{
			Kind:    InvalidInput,
			Message: fmt.Sprintf("request shape: %v", err),
			cause:   err,
		}
	}

	var req SolveRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, &RequestError{
			Kind:    InvalidInput,
			Message: fmt.Sprintf("decode request: %v", err),
			cause:   err,
		}
	}
	return &req, nil
}
