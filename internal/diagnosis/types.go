package diagnosis

import (
	"github.com/mykeomos/Newton-law-tutor/internal/answer"
	"github.com/mykeomos/Newton-law-tutor/internal/units"
)

// ErrorKind classifies a wrong answer.
type ErrorKind string

const (
	KindInvertedFormula ErrorKind = "INVERTED_FORMULA"
	KindUnitMismatch    ErrorKind = "UNIT_MISMATCH"
	KindSignError       ErrorKind = "SIGN_ERROR"
	KindArithmetic      ErrorKind = "ARITHMETIC"
	KindUnclassified    ErrorKind = "UNCLASSIFIED"
)

// AllKinds returns the error kinds in classification priority order.
func AllKinds() []ErrorKind {
	return []ErrorKind{
		KindInvertedFormula,
		KindUnitMismatch,
		KindSignError,
		KindArithmetic,
		KindUnclassified,
	}
}

// Valid reports whether k is a known error kind.
func (k ErrorKind) Valid() bool {
	switch k {
	case KindInvertedFormula, KindUnitMismatch, KindSignError, KindArithmetic, KindUnclassified:
		return true
	}
	return false
}

// ClassifyInput holds the context for classification. All values are
// canonical SI; the evaluator has already judged Student wrong.
type ClassifyInput struct {
	Student float64
	Correct float64
	Given   map[units.Dimension]float64
	Target  units.Dimension
	Tol     answer.Tolerance
}

// DiagnosisResult is the output of classifying a wrong answer.
type DiagnosisResult struct {
	Kind            ErrorKind
	MisconceptionID string  // Non-empty only when an LLM matched a taxonomy entry
	Confidence      float64 // 0.0 to 1.0
	ClassifierName  string  // Which classifier/LLM produced this result
	Reasoning       string  // LLM reasoning (empty for rule-based)
}
