package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mykeomos/Newton-law-tutor/internal/llm"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Show the LLM provider configuration",
	Long: `Reports which provider the tutor would use, resolved the same way the
server resolves it: NEWTON_LLM_PROVIDER if set, otherwise the first
standard API key found. API keys are never printed.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			cfg    llm.Config
			source string
		)
		switch {
		case os.Getenv("NEWTON_LLM_PROVIDER") != "":
			cfg = llm.ConfigFromEnv()
			source = "NEWTON_LLM_PROVIDER"
		default:
			discovered, ok := llm.DiscoverConfig()
			if !ok {
				fmt.Println("No LLM provider configured.")
				fmt.Println()
				fmt.Println("Set NEWTON_LLM_PROVIDER (anthropic, openai, gemini, openrouter, mock)")
				fmt.Println("or export GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY or")
				fmt.Println("OPENROUTER_API_KEY. The tutor works without one: problems come from")
				fmt.Println("the local generator and diagnosis stays rule-based.")
				return
			}
			cfg = discovered
			source = "discovered API key"
		}

		model, keySet := providerDetails(cfg)

		fmt.Printf("Provider:  %s (%s)\n", cfg.Provider, source)
		fmt.Printf("Model:     %s\n", model)
		if keySet {
			fmt.Printf("API key:   set\n")
		} else {
			fmt.Printf("API key:   not set\n")
		}
		fmt.Printf("Timeout:   %s\n", cfg.Timeout)
		fmt.Printf("Retries:   %d attempts\n", cfg.Retry.MaxAttempts)

		if err := cfg.Validate(); err != nil {
			fmt.Println()
			fmt.Printf("Warning: %v\n", err)
		}
	},
}

func providerDetails(cfg llm.Config) (model string, keySet bool) {
	switch cfg.Provider {
	case "anthropic":
		return cfg.Anthropic.Model, cfg.Anthropic.APIKey != ""
	case "openai":
		return cfg.OpenAI.Model, cfg.OpenAI.APIKey != ""
	case "gemini":
		return cfg.Gemini.Model, cfg.Gemini.APIKey != ""
	case "openrouter":
		return cfg.OpenRouter.Model, cfg.OpenRouter.APIKey != ""
	case "mock":
		return "(scripted)", true
	}
	return "", false
}
