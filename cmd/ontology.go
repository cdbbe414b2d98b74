package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mykeomos/Newton-law-tutor/internal/diagnosis"
	"github.com/mykeomos/Newton-law-tutor/internal/ontology"
	"github.com/mykeomos/Newton-law-tutor/internal/units"
)

var ontologyCmd = &cobra.Command{
	Use:   "ontology",
	Short: "Inspect the physics ontology",
	Long: `Shows what the tutor resolved from the ontology: formulas and unit
symbols per target quantity, and the hint text per mistake kind.
Without --path the same discovery order as the server applies.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("path")

		var (
			graph  *ontology.Graph
			source string
		)
		switch {
		case path != "":
			g, err := ontology.LoadFile(path)
			if err != nil {
				return fmt.Errorf("load ontology: %w", err)
			}
			graph, source = g, path
		default:
			if g, found, err := ontology.Discover("."); err == nil {
				graph, source = g, found
			} else {
				graph, source = ontology.Embedded(), "embedded"
			}
		}

		provider := ontology.NewProvider(graph)
		sum := provider.Summarize()

		fmt.Printf("Source:       %s\n", source)
		fmt.Printf("Triples:      %d\n", sum.Triples)
		fmt.Printf("Individuals:  %d\n", sum.Individuals)
		fmt.Printf("Hints:        %d\n", sum.Hints)
		fmt.Println()

		fmt.Printf("%-14s  %-18s  %s\n", "Target", "Formula", "Unit")
		fmt.Println(strings.Repeat("─", 44))
		for _, d := range units.AllDimensions() {
			formula, _ := provider.Formula(d)
			symbol, _ := provider.UnitSymbol(d)
			fmt.Printf("%-14s  %-18s  %s\n", string(d), formula, symbol)
		}
		fmt.Println()

		fmt.Printf("%-18s  %s\n", "Mistake", "Hint")
		fmt.Println(strings.Repeat("─", 70))
		for _, kind := range diagnosis.AllKinds() {
			text, ok := provider.Lookup(units.Force, kind)
			if !ok {
				text = "(none)"
			}
			fmt.Printf("%-18s  %s\n", string(kind), text)
		}
		fmt.Println()

		fmt.Printf("%-24s  %s\n", "Individual", "Label")
		fmt.Println(strings.Repeat("─", 56))
		for _, iri := range graph.Individuals(ontology.OWLNamedIndividual) {
			label, _ := graph.Label(iri)
			fmt.Printf("%-24s  %s\n", ontology.LocalName(iri), label)
		}
		return nil
	},
}

func init() {
	ontologyCmd.Flags().String("path", "", "Ontology file in Turtle or RDF/XML")
}
