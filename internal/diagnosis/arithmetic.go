package diagnosis

import "github.com/mykeomos/Newton-law-tutor/internal/answer"

// ArithmeticBand is the default relative-error ceiling (inclusive) under
// which a wrong answer is treated as an arithmetic slip rather than a
// conceptual error.
const ArithmeticBand = 0.20

// ArithmeticClassifier flags answers that are close to correct but outside
// the grading tolerance: the student knew the formula and slipped on the
// calculation.
type ArithmeticClassifier struct {
	Band float64 // zero means ArithmeticBand
}

func (c *ArithmeticClassifier) Name() string { return "arithmetic" }

func (c *ArithmeticClassifier) Classify(input *ClassifyInput) (ErrorKind, float64) {
	band := c.Band
	if band == 0 {
		band = ArithmeticBand
	}
	if answer.RelativeError(input.Student, input.Correct) <= band {
		return KindArithmetic, 0.6
	}
	return "", 0
}
