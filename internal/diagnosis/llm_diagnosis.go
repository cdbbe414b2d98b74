package diagnosis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/mykeomos/Newton-law-tutor/internal/llm"
	"github.com/mykeomos/Newton-law-tutor/internal/units"
)

// DiagnoserConfig bounds a single diagnosis call.
type DiagnoserConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultDiagnoserConfig keeps answers short and fairly deterministic.
func DefaultDiagnoserConfig() DiagnoserConfig {
	return DiagnoserConfig{
		MaxTokens:   256,
		Temperature: 0.3,
	}
}

// Diagnoser asks an LLM which known misconception a wrong answer matches.
type Diagnoser struct {
	provider llm.Provider
	cfg      DiagnoserConfig
}

func NewDiagnoser(provider llm.Provider, cfg DiagnoserConfig) *Diagnoser {
	return &Diagnoser{provider: provider, cfg: cfg}
}

// GivenValue is one supplied quantity, ordered for deterministic prompts.
type GivenValue struct {
	Name  units.Dimension
	Value float64
	Unit  string
}

// DiagnosisRequest describes the problem, the wrong answer, and the
// misconception candidates the model may choose from.
type DiagnosisRequest struct {
	Target       units.Dimension
	Formula      string
	Given        []GivenValue
	CorrectValue float64
	StudentValue float64
	Candidates   []*Misconception
}

// diagnosisReply is the JSON document the schema forces the model to emit.
type diagnosisReply struct {
	MisconceptionID *string `json:"misconception_id"`
	Confidence      float64 `json:"confidence"`
	Reasoning       string  `json:"reasoning"`
}

// Diagnose matches a wrong answer against the candidate misconceptions. An ID
// outside the candidate list counts as no match, never as a new category.
func (d *Diagnoser) Diagnose(ctx context.Context, req *DiagnosisRequest) (*DiagnosisResult, error) {
	ctx = llm.WithPurpose(ctx, "error-diagnosis")

	prompt, err := renderDiagnosisPrompt(req)
	if err != nil {
		return nil, fmt.Errorf("build diagnosis prompt: %w", err)
	}

	resp, err := d.provider.Generate(ctx, llm.Request{
		System:      diagnosisSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		Schema:      DiagnosisSchema,
		MaxTokens:   d.cfg.MaxTokens,
		Temperature: d.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM diagnosis failed: %w", err)
	}

	var reply diagnosisReply
	if err := json.Unmarshal(resp.Content, &reply); err != nil {
		return nil, fmt.Errorf("failed to parse diagnosis response: %w", err)
	}

	matched := findCandidate(req.Candidates, reply.MisconceptionID)
	if matched == nil {
		return &DiagnosisResult{
			Kind:           KindUnclassified,
			Confidence:     reply.Confidence,
			ClassifierName: "llm",
			Reasoning:      reply.Reasoning,
		}, nil
	}

	return &DiagnosisResult{
		Kind:            matched.Kind,
		MisconceptionID: matched.ID,
		Confidence:      reply.Confidence,
		ClassifierName:  "llm",
		Reasoning:       reply.Reasoning,
	}, nil
}

func findCandidate(candidates []*Misconception, id *string) *Misconception {
	if id == nil {
		return nil
	}
	for _, c := range candidates {
		if c.ID == *id {
			return c
		}
	}
	return nil
}

const diagnosisSystemPrompt = `You are an expert physics education diagnostician. A student answered a Newton's Second Law problem incorrectly. Your job is to decide whether the wrong answer fits one of the known misconception patterns listed in the message.

Rules:
- Pick the single best matching ID from the list, or return null for misconception_id when nothing fits.
- Never answer with an ID that is not on the list.
- Score confidence from 0.0 (weak match) to 1.0 (certain).
- Give exactly one sentence of reasoning.`

var diagnosisPromptTemplate = template.Must(template.New("diagnosis").Parse(`Problem: find the {{.Target}} using {{.Formula}}.
{{range .Given}}{{.Name}}: {{.Value}} {{.Unit}}
{{end}}Correct answer: {{.CorrectValue}}
Student's answer: {{.StudentValue}}

Known misconceptions:
{{range .Candidates}}- {{.ID}} ({{.Label}}): {{.Description}}
{{end}}`))

func renderDiagnosisPrompt(req *DiagnosisRequest) (string, error) {
	var buf bytes.Buffer
	if err := diagnosisPromptTemplate.Execute(&buf, req); err != nil {
		return "", err
	}
	return buf.String(), nil
}
