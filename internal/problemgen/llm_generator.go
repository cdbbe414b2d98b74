package problemgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mykeomos/Newton-law-tutor/internal/llm"
	"github.com/mykeomos/Newton-law-tutor/internal/units"
)

// LLMGenerator asks the LLM provider for problems and screens each one
// through the validator chain.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New returns an LLMGenerator backed by provider.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// problemOutput mirrors the JSON shape the schema asks the LLM for.
// All three quantities are present; the target one becomes the answer.
type problemOutput struct {
	Statement  string  `json:"statement"`
	Target     string  `json:"target"`
	MassKg     float64 `json:"mass_kg"`
	AccelMS2   float64 `json:"acceleration_m_s2"`
	ForceN     float64 `json:"force_n"`
	Difficulty int     `json:"difficulty"`
}

func (o problemOutput) quantity(d units.Dimension) units.Quantity {
	var v float64
	switch d {
	case units.Mass:
		v = o.MassKg
	case units.Acceleration:
		v = o.AccelMS2
	case units.Force:
		v = o.ForceN
	}
	return units.Quantity{Value: v, Unit: d.CanonicalUnit()}
}

// Generate asks the provider for a single problem and runs the
// validator chain on it before returning.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*Problem, error) {
	ctx = llm.WithPurpose(ctx, "problem-gen")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildUserMessage(input, g.config)}},
		Schema:      ProblemSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var out problemOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	p, err := assembleProblem(out)
	if err != nil {
		return nil, err
	}
	for _, v := range g.config.Validators {
		if verr := v.Validate(p, input); verr != nil {
			return nil, verr
		}
	}
	return p, nil
}

// assembleProblem splits the three quantities into givens and answer
// according to the declared target.
func assembleProblem(out problemOutput) (*Problem, error) {
	target := units.Dimension(out.Target)
	if !target.Valid() {
		return nil, fmt.Errorf("LLM returned unknown target %q", out.Target)
	}

	given := make(map[string]units.Quantity, 2)
	for _, d := range units.AllDimensions() {
		if d != target {
			given[string(d)] = out.quantity(d)
		}
	}

	return &Problem{
		Statement:  out.Statement,
		Given:      given,
		Target:     string(target),
		Answer:     out.quantity(target),
		Difficulty: out.Difficulty,
	}, nil
}
