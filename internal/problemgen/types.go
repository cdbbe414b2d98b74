package problemgen

import "github.com/mykeomos/Newton-law-tutor/internal/units"

// Problem represents a generated practice problem ready for display.
// Given and Target are shaped like the solve request, so a problem can
// be posted straight back to the solve endpoint.
type Problem struct {
	// Statement is the word problem shown to the student. Plain text;
	// units spelled the way the normalizer accepts them (kg, N, m/s^2).
	Statement string `json:"statement"`

	// Given holds the two known quantities keyed by dimension name.
	Given map[string]units.Quantity `json:"given"`

	// Target names the quantity the student must find.
	Target string `json:"target"`

	// Answer is the correct result in the target's canonical unit.
	Answer units.Quantity `json:"answer"`

	// Difficulty is a rating from 1 (easy) to 5 (hard). Template
	// problems rate by number size; LLM problems self-assess.
	Difficulty int `json:"difficulty"`
}

// GenerateInput holds all context needed to generate a problem.
type GenerateInput struct {
	// Target picks the unknown quantity. The zero value lets the
	// generator choose at random.
	Target units.Dimension

	// PriorStatements contains the statements of problems already
	// shown in this session. Used for deduplication in the prompt.
	PriorStatements []string
}
