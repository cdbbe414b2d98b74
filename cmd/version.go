package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is stamped at build time via -ldflags. Source builds report
// "(devel)", which also disables self-update.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the newton-tutor version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("newton-tutor %s\n", version)
	},
}
