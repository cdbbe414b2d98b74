package diagnosis

import "github.com/mykeomos/Newton-law-tutor/internal/llm"

// DiagnosisSchema forces diagnosis replies into a single verdict document:
// which candidate misconception matched (or null), with what confidence,
// and a one-line justification.
var DiagnosisSchema = &llm.Schema{
	Name:        "error-diagnosis",
	Description: "Match between a wrong physics answer and the misconception taxonomy",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"misconception_id": map[string]any{
				"type":        []any{"string", "null"},
				"description": "ID chosen from the candidate list, or null when nothing fits",
			},
			"confidence": map[string]any{
				"type":        "number",
				"minimum":     0.0,
				"maximum":     1.0,
				"description": "How well the wrong answer matches, from 0.0 to 1.0",
			},
			"reasoning": map[string]any{
				"type":        "string",
				"description": "One sentence on why this misconception fits, or why none do",
			},
		},
		"required":             []any{"misconception_id", "confidence", "reasoning"},
		"additionalProperties": false,
	},
}
