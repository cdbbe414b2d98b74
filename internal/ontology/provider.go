package ontology

import (
	"github.com/mykeomos/Newton-law-tutor/internal/diagnosis"
	"github.com/mykeomos/Newton-law-tutor/internal/units"
)

// hintIndividuals maps a mistake kind to the local name of the hint
// individual carrying its wording. The bundled document covers units,
// formula and arithmetic mistakes; a custom document may add the rest.
var hintIndividuals = map[diagnosis.ErrorKind]string{
	diagnosis.KindUnitMismatch:    "Hint_Units",
	diagnosis.KindInvertedFormula: "Hint_Formula",
	diagnosis.KindArithmetic:      "Hint_Arithmetic",
	diagnosis.KindSignError:       "Hint_Sign",
}

// formulaIndividuals maps each solve target to its formula individual.
var formulaIndividuals = map[units.Dimension]string{
	units.Force:        "F_equals_m_a",
	units.Acceleration: "a_equals_F_div_m",
	units.Mass:         "m_equals_F_div_a",
}

// unitIndividuals maps each quantity to its canonical unit individual.
var unitIndividuals = map[units.Dimension]string{
	units.Mass:         "Kilogram",
	units.Force:        "Newton",
	units.Acceleration: "MeterPerSecondSquared",
}

// Provider reads hint wordings and labels from a loaded Graph. It
// satisfies the hint lookup interface; misses degrade to the caller's
// next source and never to an error.
type Provider struct {
	graph *Graph
}

// NewProvider wraps a loaded graph. The graph must not be modified
// afterwards.
func NewProvider(g *Graph) *Provider {
	return &Provider{graph: g}
}

// Lookup returns the displayText of the hint individual for the kind.
// Hints in the document are keyed by mistake kind alone; the target
// parameter exists for interface compatibility.
func (p *Provider) Lookup(_ units.Dimension, kind diagnosis.ErrorKind) (string, bool) {
	local, ok := hintIndividuals[kind]
	if !ok {
		return "", false
	}
	iri, ok := p.graph.Resolve(local)
	if !ok {
		return "", false
	}
	return p.graph.LiteralLocal(iri, displayTextProp)
}

// Formula returns the display text of the formula individual for the
// target, falling back to its label.
func (p *Provider) Formula(target units.Dimension) (string, bool) {
	local, ok := formulaIndividuals[target]
	if !ok {
		return "", false
	}
	iri, ok := p.graph.Resolve(local)
	if !ok {
		return "", false
	}
	if text, ok := p.graph.LiteralLocal(iri, displayTextProp); ok {
		return text, true
	}
	return p.graph.Label(iri)
}

// UnitSymbol returns the symbol of the canonical unit individual for
// the target, falling back to its label.
func (p *Provider) UnitSymbol(target units.Dimension) (string, bool) {
	local, ok := unitIndividuals[target]
	if !ok {
		return "", false
	}
	iri, ok := p.graph.Resolve(local)
	if !ok {
		return "", false
	}
	if text, ok := p.graph.LiteralLocal(iri, symbolProp); ok {
		return text, true
	}
	return p.graph.Label(iri)
}

// Summary describes a loaded document for health reporting.
type Summary struct {
	Triples     int `json:"triples"`
	Individuals int `json:"individuals"`
	Hints       int `json:"hints"`
}

// Summarize counts the graph's named individuals and resolvable hints.
func (p *Provider) Summarize() Summary {
	s := Summary{
		Triples:     p.graph.Len(),
		Individuals: len(p.graph.Individuals(OWLNamedIndividual)),
	}
	for kind := range hintIndividuals {
		if _, ok := p.Lookup("", kind); ok {
			s.Hints++
		}
	}
	return s
}

// Graph exposes the underlying graph for read-only inspection.
func (p *Provider) Graph() *Graph {
	return p.graph
}
