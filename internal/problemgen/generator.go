package problemgen

import "context"

// Generator produces practice problems on demand.
type Generator interface {
	// Generate returns one problem matching the input. The problem has
	// already passed the configured validator chain, so callers can hand
	// it straight to the student.
	Generate(ctx context.Context, input GenerateInput) (*Problem, error)
}
