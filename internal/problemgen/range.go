package problemgen

import "math"

// maxGivenValue caps generated quantities. Bigger numbers make for
// calculator exercises, not practice problems.
const maxGivenValue = 10000

// RangeValidator checks that every quantity is a positive finite number
// in a pedagogically sensible range. Positive givens also guarantee the
// problem is solvable (no zero divisor for any target).
type RangeValidator struct{}

func (v *RangeValidator) Name() string { return "value-range" }

func (v *RangeValidator) Validate(p *Problem, _ GenerateInput) *ValidationError {
	for name, q := range p.Given {
		if math.IsNaN(q.Value) || math.IsInf(q.Value, 0) {
			return reject(v.Name(), "%s value is not a finite number", name)
		}
		if q.Value <= 0 {
			return reject(v.Name(), "%s value %g must be positive", name, q.Value)
		}
		if q.Value > maxGivenValue {
			return reject(v.Name(), "%s value %g exceeds %d", name, q.Value, maxGivenValue)
		}
	}
	if math.IsNaN(p.Answer.Value) || math.IsInf(p.Answer.Value, 0) || p.Answer.Value <= 0 {
		return reject(v.Name(), "answer value %g must be a positive finite number", p.Answer.Value)
	}
	return nil
}
