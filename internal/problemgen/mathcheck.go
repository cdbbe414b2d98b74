package problemgen

import (
	"fmt"

	"github.com/mykeomos/Newton-law-tutor/internal/answer"
	"github.com/mykeomos/Newton-law-tutor/internal/newton"
	"github.com/mykeomos/Newton-law-tutor/internal/units"
)

// MathCheckValidator independently recomputes the answer from the given
// quantities and rejects problems whose stated answer disagrees. This
// is the last line of defense against an LLM inventing numbers.
type MathCheckValidator struct{}

func (v *MathCheckValidator) Name() string { return "math-check" }

func (v *MathCheckValidator) Validate(p *Problem, _ GenerateInput) *ValidationError {
	if err := CheckConsistency(p); err != nil {
		return reject(v.Name(), "%s", err)
	}
	return nil
}

// CheckConsistency normalizes the given quantities, solves for the
// target and verifies the stated answer agrees within the default
// tolerance. It reports the first inconsistency found.
func CheckConsistency(p *Problem) error {
	target := units.Dimension(p.Target)
	if !target.Valid() {
		return fmt.Errorf("unknown target %q", p.Target)
	}

	given := make(map[units.Dimension]float64, len(p.Given))
	for name, q := range p.Given {
		dim := units.Dimension(name)
		if !dim.Valid() {
			return fmt.Errorf("unknown given quantity %q", name)
		}
		v, err := units.Normalize(q, dim)
		if err != nil {
			return err
		}
		given[dim] = v
	}

	want, err := newton.Solve(given, target)
	if err != nil {
		return err
	}
	got, err := units.Normalize(p.Answer, target)
	if err != nil {
		return err
	}
	if !answer.Evaluate(got, want, answer.DefaultTolerance()) {
		return fmt.Errorf("stated answer %g %s, but %s gives %g %s",
			p.Answer.Value, p.Answer.Unit, newton.Formula(target), want, target.CanonicalUnit())
	}
	return nil
}
