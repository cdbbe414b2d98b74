package diagnosis

import (
	"github.com/mykeomos/Newton-law-tutor/internal/answer"
	"github.com/mykeomos/Newton-law-tutor/internal/newton"
)

// InvertedFormulaClassifier flags answers produced by a wrong rearrangement
// of F = m·a on the same givens: dividing where the formula multiplies,
// multiplying where it divides, or flipping a ratio.
type InvertedFormulaClassifier struct{}

func (c *InvertedFormulaClassifier) Name() string { return "inverted-formula" }

func (c *InvertedFormulaClassifier) Classify(input *ClassifyInput) (ErrorKind, float64) {
	for _, candidate := range newton.InverseCandidates(input.Given, input.Target) {
		if answer.Evaluate(input.Student, candidate, input.Tol) {
			return KindInvertedFormula, 0.9
		}
	}
	return "", 0
}
