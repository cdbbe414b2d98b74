package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mykeomos/Newton-law-tutor/internal/kb"
)

var kbCmd = &cobra.Command{
	Use:   "kb",
	Short: "Inspect or initialize the hint knowledge base",
	Long: `Opens the SQLite knowledge base and lists its hint overrides and unit
aliases. --seed fills an empty database with the default rows so an
operator has something to edit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("path")
		seed, _ := cmd.Flags().GetBool("seed")

		if path == "" {
			var err error
			path, err = kb.DefaultPath()
			if err != nil {
				return fmt.Errorf("resolve knowledge base path: %w", err)
			}
		}

		base, err := kb.Open(path)
		if err != nil {
			return fmt.Errorf("open knowledge base: %w", err)
		}
		defer base.Close()

		ctx := cmd.Context()
		if seed {
			if err := base.Seed(ctx); err != nil {
				return fmt.Errorf("seed knowledge base: %w", err)
			}
			fmt.Println("Seeded default hints and unit aliases.")
			fmt.Println()
		}

		rows, err := base.ListHints(ctx)
		if err != nil {
			return fmt.Errorf("list hints: %w", err)
		}
		aliases, err := base.LoadUnitAliases(ctx)
		if err != nil {
			return fmt.Errorf("load unit aliases: %w", err)
		}

		fmt.Printf("Knowledge base: %s\n", path)
		fmt.Printf("Hints:          %d\n", len(rows))
		fmt.Printf("Unit aliases:   %d\n", len(aliases))

		if len(rows) > 0 {
			fmt.Println()
			fmt.Printf("%-14s  %-18s  %s\n", "Target", "Mistake", "Hint")
			fmt.Println(strings.Repeat("─", 72))
			for _, row := range rows {
				target := row.Target
				if target == "" {
					target = "(all)"
				}
				fmt.Printf("%-14s  %-18s  %s\n", target, row.Kind, truncate(row.Text, 60))
			}
		}

		if len(aliases) > 0 {
			fmt.Println()
			fmt.Printf("%-10s  %-14s  %s\n", "Symbol", "Dimension", "Factor")
			fmt.Println(strings.Repeat("─", 40))
			for _, u := range aliases {
				fmt.Printf("%-10s  %-14s  %g\n", u.Symbol, string(u.Dimension), u.Factor)
			}
		}
		return nil
	},
}

func init() {
	kbCmd.Flags().String("path", "", "SQLite file (default: NEWTON_KB_PATH or the user data dir)")
	kbCmd.Flags().Bool("seed", false, "Insert the default hints and aliases before listing")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
