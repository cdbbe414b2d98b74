package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mykeomos/Newton-law-tutor/internal/answer"
	"github.com/mykeomos/Newton-law-tutor/internal/hints"
	"github.com/mykeomos/Newton-law-tutor/internal/ontology"
	"github.com/mykeomos/Newton-law-tutor/internal/tutor"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Grade a single problem from JSON",
	Long: `Reads a solve request from stdin (or --file) and prints the response.

Request shape:

  {
    "given": {"mass": {"value": 4, "unit": "kg"}, "acceleration": {"value": 3, "unit": "m/s^2"}},
    "target": "force",
    "studentAnswer": {"value": 11, "unit": "N"}
  }

studentAnswer is optional; without it the response only carries the
correct value. Diagnosis runs rule-based, no LLM is contacted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")
		pretty, _ := cmd.Flags().GetBool("pretty")

		var (
			raw []byte
			err error
		)
		if file != "" {
			raw, err = os.ReadFile(file)
		} else {
			raw, err = io.ReadAll(cmd.InOrStdin())
		}
		if err != nil {
			return fmt.Errorf("read request: %w", err)
		}

		selector := hints.NewSelector(ontology.NewProvider(ontology.Embedded()))
		svc := tutor.NewService(nil, selector, answer.DefaultTolerance())

		resp, err := svc.SolveJSON(cmd.Context(), raw)
		if err != nil {
			if reqErr := tutor.AsRequestError(err); reqErr != nil {
				return fmt.Errorf("%s: %s", reqErr.Kind, reqErr.Message)
			}
			return err
		}

		out, err := marshalJSON(resp, pretty)
		if err != nil {
			return fmt.Errorf("encode response: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	solveCmd.Flags().String("file", "", "Read the request from a file instead of stdin")
	solveCmd.Flags().Bool("pretty", false, "Indent the JSON response")
}
