package llm

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

// NewProvider builds the configured provider wrapped in the standard
// middleware. Callers see retry first, then logging, then the vendor
// client. The mock provider skips the middleware.
func NewProvider(ctx context.Context, cfg Config, logger *slog.Logger) (Provider, error) {
	if cfg.Provider == "mock" {
		return NewMockProvider(), nil
	}

	base, err := newVendorProvider(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return WithRetry(WithLogging(base, logger), cfg.Retry), nil
}

// newVendorProvider picks the vendor client named by cfg.Provider.
func newVendorProvider(ctx context.Context, cfg Config) (Provider, error) {
	var p Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		p, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		p, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		p, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		p, err = NewOpenRouterProvider(cfg.OpenRouter)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}
	return p, nil
}

// NewProviderFromEnv builds a provider from NEWTON_LLM_* environment
// variables. When NEWTON_LLM_PROVIDER is unset it falls back to probing
// the standard API key variables (GEMINI_API_KEY, OPENAI_API_KEY, ...).
// Returns (nil, nil) when no provider is configured, so callers can run
// with rule-based behavior only.
func NewProviderFromEnv(ctx context.Context, logger *slog.Logger) (Provider, error) {
	if os.Getenv("NEWTON_LLM_PROVIDER") != "" {
		cfg := ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return NewProvider(ctx, cfg, logger)
	}

	cfg, ok := DiscoverConfig()
	if !ok {
		return nil, nil
	}
	return NewProvider(ctx, cfg, logger)
}
