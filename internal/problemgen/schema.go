package problemgen

import "github.com/mykeomos/Newton-law-tutor/internal/llm"

// prop is a shorthand for a scalar JSON schema property.
func prop(typ, desc string) map[string]any {
	return map[string]any{"type": typ, "description": desc}
}

// ProblemSchema is the JSON schema for generated problems. All three
// quantities are required in SI units; the one named by target is the
// answer, the other two are the givens.
var ProblemSchema = &llm.Schema{
	Name:        "physics-problem",
	Description: "A single Newton's second law word problem with consistent values",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"statement": prop("string",
				"The word problem shown to the student, plain text, SI units spelled kg, N and m/s^2"),
			"target": map[string]any{
				"type":        "string",
				"enum":        []any{"mass", "acceleration", "force"},
				"description": "The unknown quantity the problem asks for",
			},
			"mass_kg":           prop("number", "The mass in kilograms"),
			"acceleration_m_s2": prop("number", "The acceleration in meters per second squared"),
			"force_n":           prop("number", "The net force in newtons; must equal mass_kg times acceleration_m_s2"),
			"difficulty": map[string]any{
				"type":        "integer",
				"minimum":     1,
				"maximum":     5,
				"description": "How hard the problem is, from 1 (easy) to 5 (hard)",
			},
		},
		"required":             []any{"statement", "target", "mass_kg", "acceleration_m_s2", "force_n", "difficulty"},
		"additionalProperties": false,
	},
}
