// Package newton implements the F = m·a relationships used by the tutor:
// solving for the missing quantity and enumerating the values a student who
// picked the wrong rearrangement would have produced.
package newton

import (
	"fmt"

	"github.com/mykeomos/Newton-law-tutor/internal/units"
)

// DegenerateInputError reports a solve that would divide by zero.
type DegenerateInputError struct {
	Target  units.Dimension
	Divisor units.Dimension
}

func (e *DegenerateInputError) Error() string {
	return fmt.Sprintf("cannot solve for %s: %s is zero (division by zero)", e.Target, e.Divisor)
}

// GivenError reports a given set that does not supply the two quantities the
// target's formula needs.
type GivenError struct {
	Target  units.Dimension
	Missing units.Dimension
}

func (e *GivenError) Error() string {
	return fmt.Sprintf("solving for %s requires %s", e.Target, e.Missing)
}

// Formula returns the rearrangement used to solve for a target.
func Formula(target units.Dimension) string {
	switch target {
	case units.Force:
		return "F = m × a"
	case units.Mass:
		return "m = F / a"
	case units.Acceleration:
		return "a = F / m"
	default:
		return ""
	}
}

// Solve computes the target quantity from the other two canonical SI values.
// A required divisor of exactly zero fails with *DegenerateInputError rather
// than silently producing Inf. Pure and deterministic.
func Solve(given map[units.Dimension]float64, target units.Dimension) (float64, error) {
	switch target {
	case units.Force:
		m, a, err := pick(given, target, units.Mass, units.Acceleration)
		if err != nil {
			return 0, err
		}
		return m * a, nil

	case units.Mass:
		f, a, err := pick(given, target, units.Force, units.Acceleration)
		if err != nil {
			return 0, err
		}
		if a == 0 {
			return 0, &DegenerateInputError{Target: target, Divisor: units.Acceleration}
		}
		return f / a, nil

	case units.Acceleration:
		f, m, err := pick(given, target, units.Force, units.Mass)
		if err != nil {
			return 0, err
		}
		if m == 0 {
			return 0, &DegenerateInputError{Target: target, Divisor: units.Mass}
		}
		return f / m, nil

	default:
		return 0, fmt.Errorf("unknown target dimension %q", target)
	}
}

// InverseCandidates returns the values produced by the common wrong
// rearrangements of the target's formula on the same givens: dividing where
// the formula multiplies, multiplying where it divides, and flipping a
// ratio. Candidates whose own computation would divide by zero are skipped.
func InverseCandidates(given map[units.Dimension]float64, target units.Dimension) []float64 {
	var out []float64
	switch target {
	case units.Force:
		m, a := given[units.Mass], given[units.Acceleration]
		if a != 0 {
			out = append(out, m/a)
		}
		if m != 0 {
			out = append(out, a/m)
		}
	case units.Mass:
		f, a := given[units.Force], given[units.Acceleration]
		out = append(out, f*a)
		if f != 0 {
			out = append(out, a/f)
		}
	case units.Acceleration:
		f, m := given[units.Force], given[units.Mass]
		out = append(out, f*m)
		if f != 0 {
			out = append(out, m/f)
		}
	}
	return out
}

// pick extracts the two required given values, reporting the first one
// missing.
func pick(given map[units.Dimension]float64, target, first, second units.Dimension) (float64, float64, error) {
	a, ok := given[first]
	if !ok {
		return 0, 0, &GivenError{Target: target, Missing: first}
	}
	b, ok := given[second]
	if !ok {
		return 0, 0, &GivenError{Target: target, Missing: second}
	}
	return a, b, nil
}
