package problemgen

// Config tunes the LLM generation pipeline.
type Config struct {
	// Validators run in order on every generated problem. The first
	// failure aborts the attempt.
	Validators []Validator

	// MaxTokens caps the LLM response length.
	MaxTokens int

	// Temperature sets LLM sampling randomness, from 0.0 to 1.0.
	Temperature float64

	// MaxPriorStatements caps how many earlier problem statements the
	// prompt lists for deduplication.
	MaxPriorStatements int
}

// DefaultConfig returns the standard pipeline: structural, value-range,
// then math-check validation.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&RangeValidator{},
			&MathCheckValidator{},
		},
		MaxTokens:          512,
		Temperature:        0.7,
		MaxPriorStatements: 8,
	}
}
