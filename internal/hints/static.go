package hints

import "github.com/mykeomos/Newton-law-tutor/internal/diagnosis"

// staticHints is the built-in table, seeded at init. The wordings for
// units, formula and arithmetic mistakes are the classic ones shown on
// the practice page; unclassified mistakes fall through to the generic
// per-target hint instead.
var staticHints = NewTable()

var seedHints = []struct {
	kind diagnosis.ErrorKind
	text string
}{
	{
		kind: diagnosis.KindUnitMismatch,
		text: "Check your units: use N for force, kg for mass, and m/s^2 for acceleration.",
	},
	{
		kind: diagnosis.KindInvertedFormula,
		text: "Think about which variable is missing and how to rearrange F = m × a.",
	},
	{
		kind: diagnosis.KindSignError,
		text: "Check the sign of your answer: mass, force and acceleration are all positive in these problems.",
	},
	{
		kind: diagnosis.KindArithmetic,
		text: "Re-check your calculation – did you multiply or divide correctly?",
	},
}

func init() {
	for _, s := range seedHints {
		staticHints.SetKind(s.kind, s.text)
	}
}

// Static returns the built-in hint table. Callers must not modify it.
func Static() *Table {
	return staticHints
}

// Defaults returns a copy of the built-in kind-level hint texts, for
// seeding external hint stores.
func Defaults() map[diagnosis.ErrorKind]string {
	out := make(map[diagnosis.ErrorKind]string, len(seedHints))
	for _, s := range seedHints {
		out[s.kind] = s.text
	}
	return out
}
