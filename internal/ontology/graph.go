// Package ontology loads the Newton's law ontology document into a
// read-only triple graph and exposes the labels, formulas and hint
// wordings it carries.
//
// Two serializations are understood: a Turtle subset (prefixes,
// predicate and object lists, string and numeric literals) and an
// RDF/XML subset (flat descriptions and typed nodes). Anything beyond
// that, such as blank nodes or reasoning, is out of scope; the graph is
// a metadata source, not an inference engine.
package ontology

import "sort"

// Term is a node in the graph: an IRI or a literal value.
type Term struct {
	Value   string
	Literal bool
}

// Triple is one (subject, predicate, object) statement.
type Triple struct {
	Subject   string
	Predicate string
	Object    Term
}

// Graph is an immutable set of triples indexed for lookup. Individuals
// are commonly addressed by local name (the part after '#' or the last
// '/'), so the base IRI of the document does not matter to callers.
type Graph struct {
	triples   []Triple
	bySubject map[string][]Triple
	byLocal   map[string]string
}

func newGraph(triples []Triple) *Graph {
	g := &Graph{
		triples:   triples,
		bySubject: make(map[string][]Triple),
		byLocal:   make(map[string]string),
	}
	for _, t := range triples {
		g.bySubject[t.Subject] = append(g.bySubject[t.Subject], t)
	}

	// Local-name index over subjects. On collision the
	// lexicographically smaller IRI wins, for determinism.
	subjects := g.Subjects()
	for _, s := range subjects {
		local := LocalName(s)
		if local == "" {
			continue
		}
		if _, taken := g.byLocal[local]; !taken {
			g.byLocal[local] = s
		}
	}
	return g
}

// LocalName returns the fragment of an IRI: the part after '#', or
// after the last '/' when there is no fragment.
func LocalName(iri string) string {
	for i := len(iri) - 1; i >= 0; i-- {
		switch iri[i] {
		case '#', '/':
			return iri[i+1:]
		}
	}
	return iri
}

// Len reports the number of triples.
func (g *Graph) Len() int {
	return len(g.triples)
}

// Triples returns the underlying statements. Callers must not modify
// the returned slice.
func (g *Graph) Triples() []Triple {
	return g.triples
}

// Subjects returns all distinct subject IRIs, sorted.
func (g *Graph) Subjects() []string {
	out := make([]string, 0, len(g.bySubject))
	for s := range g.bySubject {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Resolve maps a local name to the full IRI of a subject, if any
// subject in the graph carries it.
func (g *Graph) Resolve(local string) (string, bool) {
	iri, ok := g.byLocal[local]
	return iri, ok
}

// Objects returns all objects of (subject, predicate) statements.
func (g *Graph) Objects(subject, predicate string) []Term {
	var out []Term
	for _, t := range g.bySubject[subject] {
		if t.Predicate == predicate {
			out = append(out, t.Object)
		}
	}
	return out
}

// Literal returns the first literal object of (subject, predicate).
func (g *Graph) Literal(subject, predicate string) (string, bool) {
	for _, t := range g.bySubject[subject] {
		if t.Predicate == predicate && t.Object.Literal {
			return t.Object.Value, true
		}
	}
	return "", false
}

// LiteralLocal is Literal keyed by the predicate's local name, so that
// documents with differing base IRIs still resolve their data
// properties (displayText, symbol, ...).
func (g *Graph) LiteralLocal(subject, predicateLocal string) (string, bool) {
	for _, t := range g.bySubject[subject] {
		if t.Object.Literal && LocalName(t.Predicate) == predicateLocal {
			return t.Object.Value, true
		}
	}
	return "", false
}

// Label returns the rdfs:label of a subject.
func (g *Graph) Label(subject string) (string, bool) {
	return g.Literal(subject, RDFSLabel)
}

// Types returns the rdf:type IRIs of a subject.
func (g *Graph) Types(subject string) []string {
	var out []string
	for _, t := range g.bySubject[subject] {
		if t.Predicate == RDFType && !t.Object.Literal {
			out = append(out, t.Object.Value)
		}
	}
	return out
}

// IsA reports whether the subject has the given rdf:type.
func (g *Graph) IsA(subject, class string) bool {
	for _, typ := range g.Types(subject) {
		if typ == class {
			return true
		}
	}
	return false
}

// Individuals returns the sorted subjects typed with the given class
// IRI.
func (g *Graph) Individuals(class string) []string {
	var out []string
	for _, s := range g.Subjects() {
		if g.IsA(s, class) {
			out = append(out, s)
		}
	}
	return out
}
