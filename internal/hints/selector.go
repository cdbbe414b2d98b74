package hints

import (
	"github.com/mykeomos/Newton-law-tutor/internal/diagnosis"
	"github.com/mykeomos/Newton-law-tutor/internal/units"
)

// genericHints are the per-target fallbacks, used for unclassified
// mistakes and when no more specific source has an entry.
var genericHints = map[units.Dimension]string{
	units.Force:        "Force equals mass times acceleration: F = m × a.",
	units.Mass:         "Mass is force divided by acceleration: m = F / a.",
	units.Acceleration: "Acceleration is force divided by mass: a = F / m.",
}

// fallbackHint covers targets outside the known set. Select must never
// return an empty string.
const fallbackHint = "Write down F = m × a and substitute the two values you know."

// Selector resolves hints by consulting its providers in order, then
// the built-in table, then the generic per-target wording.
type Selector struct {
	providers []Provider
}

// NewSelector builds a Selector. Providers are consulted in argument
// order; nil entries are skipped.
func NewSelector(providers ...Provider) *Selector {
	s := &Selector{}
	for _, p := range providers {
		if p != nil {
			s.providers = append(s.providers, p)
		}
	}
	return s
}

// Select returns the hint for a classified mistake. It never fails and
// never returns "".
func (s *Selector) Select(target units.Dimension, kind diagnosis.ErrorKind) string {
	for _, p := range s.providers {
		if text, ok := p.Lookup(target, kind); ok && text != "" {
			return text
		}
	}
	if text, ok := staticHints.Lookup(target, kind); ok {
		return text
	}
	return s.SelectGeneric(target)
}

// SelectGeneric returns the neutral per-target hint, independent of any
// classified mistake.
func (s *Selector) SelectGeneric(target units.Dimension) string {
	if text, ok := genericHints[target]; ok {
		return text
	}
	return fallbackHint
}
