package llm

import "context"

type purposeContextKey struct{}

// WithPurpose tags the context with what the call is for ("problem-gen",
// "hint-enrichment", "error-diagnosis"). The logging decorator reads it.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeContextKey{}, purpose)
}

// PurposeFrom returns the purpose tag, or "unknown" when the context has
// none.
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeContextKey{}).(string); ok {
		return p
	}
	return "unknown"
}
