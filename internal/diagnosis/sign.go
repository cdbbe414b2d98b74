package diagnosis

import "github.com/mykeomos/Newton-law-tutor/internal/answer"

// SignErrorClassifier flags answers that match the correct value with the
// sign flipped, typically a dropped direction convention (deceleration
// entered as positive, or vice versa).
type SignErrorClassifier struct{}

func (c *SignErrorClassifier) Name() string { return "sign" }

func (c *SignErrorClassifier) Classify(input *ClassifyInput) (ErrorKind, float64) {
	if input.Correct == 0 {
		return "", 0
	}
	if answer.Evaluate(input.Student, -input.Correct, input.Tol) {
		return KindSignError, 0.8
	}
	return "", 0
}
