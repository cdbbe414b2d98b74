package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mykeomos/Newton-law-tutor/internal/llm"
	"github.com/mykeomos/Newton-law-tutor/internal/problemgen"
	"github.com/mykeomos/Newton-law-tutor/internal/units"
)

var problemCmd = &cobra.Command{
	Use:   "problem",
	Short: "Generate a practice problem",
	Long: `Prints one generated problem as JSON. By default the numbers come from
the local generator; --llm asks the configured provider for a worded
problem and falls back to local generation if that fails.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		targetFlag, _ := cmd.Flags().GetString("target")
		useLLM, _ := cmd.Flags().GetBool("llm")
		pretty, _ := cmd.Flags().GetBool("pretty")

		var input problemgen.GenerateInput
		if targetFlag != "" {
			target := units.Dimension(targetFlag)
			if !target.Valid() {
				return fmt.Errorf("unknown target %q: expected mass, acceleration or force", targetFlag)
			}
			input.Target = target
		}

		var generator problemgen.Generator = problemgen.NewLocalGenerator()
		if useLLM {
			provider, err := llm.NewProviderFromEnv(cmd.Context(), slog.Default())
			if err != nil {
				return fmt.Errorf("configure LLM provider: %w", err)
			}
			if provider == nil {
				return fmt.Errorf("no LLM provider configured, set NEWTON_LLM_PROVIDER or an API key")
			}
			generator = problemgen.WithFallback(problemgen.New(provider, problemgen.DefaultConfig()), generator, slog.Default())
		}

		p, err := generator.Generate(cmd.Context(), input)
		if err != nil {
			return fmt.Errorf("generate problem: %w", err)
		}

		out, err := marshalJSON(p, pretty)
		if err != nil {
			return fmt.Errorf("encode problem: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	problemCmd.Flags().String("target", "", "Quantity to solve for: mass, acceleration or force (default random)")
	problemCmd.Flags().Bool("llm", false, "Generate with the configured LLM provider, falling back to local")
	problemCmd.Flags().Bool("pretty", false, "Indent the JSON output")
}
