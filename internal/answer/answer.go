// Package answer decides whether a student's numeric answer matches the
// correct value. Comparison always happens on canonical SI values; unit
// handling is the normalizer's job.
package answer

import "math"

// Tolerance bounds the acceptable distance between a student answer and the
// correct value: relative to the correct magnitude, with an absolute floor so
// answers near zero are not impossible to hit.
type Tolerance struct {
	Rel      float64
	AbsFloor float64
}

// DefaultTolerance returns the standard grading tolerance: 1% relative with
// a 1e-6 absolute floor.
func DefaultTolerance() Tolerance {
	return Tolerance{Rel: 0.01, AbsFloor: 1e-6}
}

// Window returns the absolute acceptance window around a correct value.
func (t Tolerance) Window(correct float64) float64 {
	return math.Max(t.AbsFloor, t.Rel*math.Abs(correct))
}

// Evaluate reports whether the student value matches the correct value within
// tolerance. Never errors for finite inputs; malformed input is rejected
// upstream by the normalizer.
func Evaluate(student, correct float64, tol Tolerance) bool {
	return math.Abs(student-correct) <= tol.Window(correct)
}

// RelativeError returns |student-correct| / |correct|. When correct is zero
// it returns 0 for an exact match and +Inf otherwise, so band checks against
// it fail closed.
func RelativeError(student, correct float64) float64 {
	if correct == 0 {
		if student == 0 {
			return 0
		}
		return math.Inf(1)
	}
	return math.Abs(student-correct) / math.Abs(correct)
}
