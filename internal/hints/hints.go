// Package hints resolves the hint text shown alongside a graded answer.
//
// Hints come from layered sources: external providers (ontology graph,
// knowledge base, LLM-enriched overlay) consulted in order, then a
// built-in table, then a generic per-target fallback. Resolution never
// fails; the worst case is the generic wording.
package hints

import (
	"github.com/mykeomos/Newton-law-tutor/internal/diagnosis"
	"github.com/mykeomos/Newton-law-tutor/internal/units"
)

// Provider supplies hint text for a (target, error kind) pair.
// Implementations return ok=false when they have nothing for the pair,
// letting the Selector fall through to the next source.
type Provider interface {
	Lookup(target units.Dimension, kind diagnosis.ErrorKind) (string, bool)
}

type pairKey struct {
	target units.Dimension
	kind   diagnosis.ErrorKind
}

// Table is an in-memory hint store with two levels of specificity:
// exact (target, kind) entries and kind-wide defaults. It implements
// Provider. Populate before use; lookups after that are read-only.
type Table struct {
	byPair map[pairKey]string
	byKind map[diagnosis.ErrorKind]string
}

// NewTable returns an empty hint table.
func NewTable() *Table {
	return &Table{
		byPair: make(map[pairKey]string),
		byKind: make(map[diagnosis.ErrorKind]string),
	}
}

// SetPair stores a hint for an exact (target, kind) pair.
func (t *Table) SetPair(target units.Dimension, kind diagnosis.ErrorKind, text string) {
	t.byPair[pairKey{target: target, kind: kind}] = text
}

// SetKind stores a hint applying to a kind regardless of target.
func (t *Table) SetKind(kind diagnosis.ErrorKind, text string) {
	t.byKind[kind] = text
}

// Lookup resolves the most specific entry for the pair: exact match
// first, then the kind-wide default.
func (t *Table) Lookup(target units.Dimension, kind diagnosis.ErrorKind) (string, bool) {
	if text, ok := t.byPair[pairKey{target: target, kind: kind}]; ok {
		return text, true
	}
	if text, ok := t.byKind[kind]; ok {
		return text, true
	}
	return "", false
}

// Len reports the number of stored entries across both levels.
func (t *Table) Len() int {
	return len(t.byPair) + len(t.byKind)
}
