package llm

import (
	"fmt"
	"os"
	"time"
)

// Config selects and parameterizes the LLM provider. The zero value is not
// usable; start from DefaultConfig or ConfigFromEnv.
type Config struct {
	// Provider is one of "anthropic", "openai", "gemini", "openrouter",
	// or "mock".
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds a single Generate call, retries included.
	Timeout time.Duration
}

// AnthropicConfig parameterizes the Anthropic provider.
type AnthropicConfig struct {
	APIKey string
	Model  string
}

// OpenAIConfig parameterizes the OpenAI provider. BaseURL switches the SDK
// to an OpenAI-compatible backend.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// GeminiConfig parameterizes the Gemini provider.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// OpenRouterConfig parameterizes the OpenRouter provider. Models are named
// with their vendor prefix, "google/gemini-2.0-flash-exp" style.
type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RetryConfig shapes the backoff applied to transient provider failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns the baseline configuration: Anthropic with the cheap
// model, three attempts with exponential backoff, 30 second timeout.
func DefaultConfig() Config {
	return Config{
		Provider:   "anthropic",
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv layers NEWTON_* environment variables over DefaultConfig.
// Unset variables leave the defaults alone.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	envOverride(&cfg.Provider, "NEWTON_LLM_PROVIDER")

	envOverride(&cfg.Anthropic.APIKey, "NEWTON_ANTHROPIC_API_KEY")
	envOverride(&cfg.Anthropic.Model, "NEWTON_ANTHROPIC_MODEL")

	envOverride(&cfg.OpenAI.APIKey, "NEWTON_OPENAI_API_KEY")
	envOverride(&cfg.OpenAI.Model, "NEWTON_OPENAI_MODEL")
	envOverride(&cfg.OpenAI.BaseURL, "NEWTON_OPENAI_BASE_URL")

	envOverride(&cfg.Gemini.APIKey, "NEWTON_GEMINI_API_KEY")
	envOverride(&cfg.Gemini.Model, "NEWTON_GEMINI_MODEL")

	envOverride(&cfg.OpenRouter.APIKey, "NEWTON_OPENROUTER_API_KEY")
	envOverride(&cfg.OpenRouter.Model, "NEWTON_OPENROUTER_MODEL")

	return cfg
}

func envOverride(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// DiscoverConfig probes the vendors' conventional API key variables and
// returns a Config for the first one set, trying Gemini, then OpenAI, then
// Anthropic, then OpenRouter.
func DiscoverConfig() (Config, bool) {
	probes := []struct {
		env   string
		apply func(*Config, string)
	}{
		{"GEMINI_API_KEY", func(c *Config, k string) { c.Provider = "gemini"; c.Gemini.APIKey = k }},
		{"OPENAI_API_KEY", func(c *Config, k string) { c.Provider = "openai"; c.OpenAI.APIKey = k }},
		{"ANTHROPIC_API_KEY", func(c *Config, k string) { c.Provider = "anthropic"; c.Anthropic.APIKey = k }},
		{"OPENROUTER_API_KEY", func(c *Config, k string) { c.Provider = "openrouter"; c.OpenRouter.APIKey = k }},
	}

	for _, probe := range probes {
		if k := os.Getenv(probe.env); k != "" {
			cfg := DefaultConfig()
			probe.apply(&cfg, k)
			return cfg, true
		}
	}
	return Config{}, false
}

// Validate reports whether the selected provider has the API key it needs.
func (c Config) Validate() error {
	var key, envVar string
	switch c.Provider {
	case "anthropic":
		key, envVar = c.Anthropic.APIKey, "NEWTON_ANTHROPIC_API_KEY"
	case "openai":
		key, envVar = c.OpenAI.APIKey, "NEWTON_OPENAI_API_KEY"
	case "gemini":
		key, envVar = c.Gemini.APIKey, "NEWTON_GEMINI_API_KEY"
	case "openrouter":
		key, envVar = c.OpenRouter.APIKey, "NEWTON_OPENROUTER_API_KEY"
	case "mock":
		return nil
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}

	if key == "" {
		return fmt.Errorf("%s is required for the %s provider", envVar, c.Provider)
	}
	return nil
}
