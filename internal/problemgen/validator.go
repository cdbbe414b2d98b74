package problemgen

import "fmt"

// Validator is one check in the post-generation pipeline.
// Implementations must be stateless; a single value is shared
// across goroutines.
type Validator interface {
	// Name identifies the validator in errors and log lines,
	// e.g. "structural" or "math-check".
	Name() string

	// Validate inspects a generated problem. A nil return means the
	// problem passed. The input is available so checks can compare the
	// problem against what was requested.
	Validate(p *Problem, input GenerateInput) *ValidationError
}

// ValidationError says which check rejected a problem and whether a
// fresh generation attempt is worth making.
type ValidationError struct {
	Validator string
	Message   string
	Retryable bool
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// reject reports a validation failure. Every pipeline check is
// retryable; a regenerated problem may pass.
func reject(validator, format string, args ...any) *ValidationError {
	return &ValidationError{
		Validator: validator,
		Message:   fmt.Sprintf(format, args...),
		Retryable: true,
	}
}
