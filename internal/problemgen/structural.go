package problemgen

import "github.com/mykeomos/Newton-law-tutor/internal/units"

// StructuralValidator checks that required fields are present, within
// length limits, and have valid quantity names.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(p *Problem, input GenerateInput) *ValidationError {
	if p.Statement == "" {
		return reject(v.Name(), "statement is empty")
	}
	if len(p.Statement) > 500 {
		return reject(v.Name(), "statement exceeds 500 characters")
	}

	target := units.Dimension(p.Target)
	if !target.Valid() {
		return reject(v.Name(), "unknown target %q", p.Target)
	}
	if input.Target.Valid() && target != input.Target {
		return reject(v.Name(), "target %q does not match requested %q", p.Target, input.Target)
	}

	if len(p.Given) != 2 {
		return reject(v.Name(), "given must hold exactly 2 quantities, got %d", len(p.Given))
	}
	for name := range p.Given {
		dim := units.Dimension(name)
		if !dim.Valid() {
			return reject(v.Name(), "unknown given quantity %q", name)
		}
		if dim == target {
			return reject(v.Name(), "target %q repeated in given", name)
		}
	}

	if p.Answer.Unit == "" {
		return reject(v.Name(), "answer unit is empty")
	}
	if p.Difficulty < 1 || p.Difficulty > 5 {
		return reject(v.Name(), "difficulty must be between 1 and 5")
	}
	return nil
}
