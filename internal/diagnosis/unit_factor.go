package diagnosis

import "github.com/mykeomos/Newton-law-tutor/internal/answer"

// DefaultUnitFactors are conversion factors students commonly misapply:
// metric prefix scales (1000, 100), standard gravity (mass/weight
// confusion), and pounds per kilogram. Each factor is checked in both
// directions.
var DefaultUnitFactors = []float64{1000, 100, 9.8, 2.20462}

// UnitFactorClassifier flags answers that are the correct value scaled by a
// known unit-conversion factor.
type UnitFactorClassifier struct {
	Factors []float64 // nil means DefaultUnitFactors
}

func (c *UnitFactorClassifier) Name() string { return "unit-factor" }

func (c *UnitFactorClassifier) Classify(input *ClassifyInput) (ErrorKind, float64) {
	if input.Correct == 0 {
		return "", 0
	}
	factors := c.Factors
	if factors == nil {
		factors = DefaultUnitFactors
	}
	for _, f := range factors {
		if answer.Evaluate(input.Student, input.Correct*f, input.Tol) ||
			answer.Evaluate(input.Student, input.Correct/f, input.Tol) {
			return KindUnitMismatch, 0.85
		}
	}
	return "", 0
}
