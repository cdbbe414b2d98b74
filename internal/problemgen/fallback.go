package problemgen

import (
	"context"
	"log/slog"
)

// fallbackGenerator tries a primary generator and answers any failure
// from the fallback, so problem delivery never depends on provider
// health.
type fallbackGenerator struct {
	primary  Generator
	fallback Generator
	logger   *slog.Logger
}

// WithFallback wraps primary so that any generation failure is answered
// by fallback instead. If logger is nil, slog.Default() is used.
func WithFallback(primary, fallback Generator, logger *slog.Logger) Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &fallbackGenerator{primary: primary, fallback: fallback, logger: logger}
}

func (g *fallbackGenerator) Generate(ctx context.Context, input GenerateInput) (*Problem, error) {
	p, err := g.primary.Generate(ctx, input)
	if err == nil {
		return p, nil
	}
	g.logger.WarnContext(ctx, "problem generation fell back",
		"error", err,
	)
	return g.fallback.Generate(ctx, input)
}
