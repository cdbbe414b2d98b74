package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mykeomos/Newton-law-tutor/internal/units"
)

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List the units the tutor accepts",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%-10s  %-14s  %14s  %s\n", "Symbol", "Dimension", "Factor", "")
		fmt.Println(strings.Repeat("─", 48))
		for _, d := range units.AllDimensions() {
			canonical := d.CanonicalUnit()
			for _, u := range units.UnitsFor(d) {
				mark := ""
				if u.Symbol == canonical {
					mark = "canonical"
				}
				fmt.Printf("%-10s  %-14s  %14g  %s\n", u.Symbol, string(d), u.Factor, mark)
			}
		}
		fmt.Println()
		fmt.Println("Factor converts a value in that unit to the canonical unit.")
	},
}
