package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "newton-tutor",
	Short: "Newton's second law practice service",
	Long: `Newton-law-tutor solves F = m * a practice problems, grades student
answers with mistake diagnosis and hints, and serves the whole loop over HTTP.

Running it with no subcommand starts the server.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file (default: newton-tutor.yaml if present)")

	rootCmd.AddCommand(
		serveCmd,
		solveCmd,
		problemCmd,
		unitsCmd,
		ontologyCmd,
		kbCmd,
		llmCmd,
		versionCmd,
		updateCmd,
	)
}

// marshalJSON renders CLI output, indented when pretty is set.
func marshalJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
