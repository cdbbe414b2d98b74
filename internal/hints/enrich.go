package hints

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/mykeomos/Newton-law-tutor/internal/diagnosis"
	"github.com/mykeomos/Newton-law-tutor/internal/llm"
	"github.com/mykeomos/Newton-law-tutor/internal/units"
)

// EnrichConfig holds configuration for LLM hint enrichment.
type EnrichConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultEnrichConfig returns sensible defaults.
func DefaultEnrichConfig() EnrichConfig {
	return EnrichConfig{
		MaxTokens:   1024,
		Temperature: 0.7,
	}
}

// enrichedKinds are the mistake kinds worth a targeted wording. The
// unclassified kind keeps the generic per-target hint.
var enrichedKinds = []diagnosis.ErrorKind{
	diagnosis.KindInvertedFormula,
	diagnosis.KindUnitMismatch,
	diagnosis.KindSignError,
	diagnosis.KindArithmetic,
}

// EnrichSchema constrains the LLM output for hint generation.
var EnrichSchema = &llm.Schema{
	Name:        "hint-table",
	Description: "Targeted hints for common mistakes in Newton's second law problems",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"hints": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"target": map[string]any{
							"type": "string",
							"enum": []any{"force", "mass", "acceleration"},
						},
						"kind": map[string]any{
							"type": "string",
							"enum": []any{"INVERTED_FORMULA", "UNIT_MISMATCH", "SIGN_ERROR", "ARITHMETIC"},
						},
						"text": map[string]any{
							"type":        "string",
							"description": "One-sentence hint; never reveals a numeric answer",
						},
					},
					"required":             []any{"target", "kind", "text"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"hints"},
		"additionalProperties": false,
	},
}

type enrichOutput struct {
	Hints []struct {
		Target string `json:"target"`
		Kind   string `json:"kind"`
		Text   string `json:"text"`
	} `json:"hints"`
}

// Enrich asks the provider for one hint per (target, mistake kind) pair
// and returns them as a Table, suitable for use as a Selector provider
// in front of the built-in wordings. Entries with unknown targets or
// kinds are dropped. Meant to run once at startup; failure here should
// be logged and ignored, never fatal.
func Enrich(ctx context.Context, provider llm.Provider, cfg EnrichConfig) (*Table, error) {
	ctx = llm.WithPurpose(ctx, "hint-enrichment")

	type pair struct {
		Target units.Dimension
		Kind   diagnosis.ErrorKind
	}
	var pairs []pair
	for _, target := range units.AllDimensions() {
		for _, kind := range enrichedKinds {
			pairs = append(pairs, pair{Target: target, Kind: kind})
		}
	}

	var buf bytes.Buffer
	if err := enrichUserTemplate.Execute(&buf, pairs); err != nil {
		return nil, fmt.Errorf("build enrichment prompt: %w", err)
	}

	resp, err := provider.Generate(ctx, llm.Request{
		System: enrichSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buf.String()},
		},
		Schema:      EnrichSchema,
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM hint enrichment failed: %w", err)
	}

	var raw enrichOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse enrichment response: %w", err)
	}

	table := NewTable()
	for _, h := range raw.Hints {
		target := units.Dimension(h.Target)
		kind := diagnosis.ErrorKind(h.Kind)
		if !target.Valid() || !kind.Valid() || h.Text == "" {
			continue
		}
		table.SetPair(target, kind, h.Text)
	}
	if table.Len() == 0 {
		return nil, fmt.Errorf("enrichment returned no usable hints")
	}

	return table, nil
}

const enrichSystemPrompt = `You are a physics tutor writing hints for students practicing Newton's Second Law (F = m × a). Write one short hint for each requested (target, mistake) pair.

Instructions:
- One sentence per hint, under 140 characters.
- Address the specific mistake for the specific target quantity.
- Never include the numeric answer to any problem.
- Return every requested pair exactly once.`

var enrichUserTemplate = template.Must(template.New("enrich").Parse(`Write hints for these pairs:
{{range .}}- target: {{.Target}}, mistake: {{.Kind}}
{{end}}`))
