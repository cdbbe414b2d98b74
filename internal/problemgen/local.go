package problemgen

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/mykeomos/Newton-law-tutor/internal/units"
)

// problemTemplate is one word-problem skeleton for a fixed target.
// text carries two %s verbs filled with the given quantities in the
// order named by order.
type problemTemplate struct {
	target units.Dimension
	order  [2]units.Dimension
	text   string
}

var problemTemplates = []problemTemplate{
	{
		target: units.Force,
		order:  [2]units.Dimension{units.Mass, units.Acceleration},
		text:   "A %s cart accelerates at a steady %s. What net force acts on it?",
	},
	{
		target: units.Force,
		order:  [2]units.Dimension{units.Mass, units.Acceleration},
		text:   "A worker pushes a %s crate so that it accelerates at %s. How much force does the worker apply?",
	},
	{
		target: units.Force,
		order:  [2]units.Dimension{units.Mass, units.Acceleration},
		text:   "What force is needed to give a %s box an acceleration of %s?",
	},
	{
		target: units.Mass,
		order:  [2]units.Dimension{units.Force, units.Acceleration},
		text:   "A net force of %s gives a loaded sled an acceleration of %s. What is the sled's mass?",
	},
	{
		target: units.Mass,
		order:  [2]units.Dimension{units.Force, units.Acceleration},
		text:   "An engine delivers a net force of %s and the kart speeds up at %s. Find the kart's mass.",
	},
	{
		target: units.Acceleration,
		order:  [2]units.Dimension{units.Mass, units.Force},
		text:   "A %s bicycle is pushed with a net force of %s. What is its acceleration?",
	},
	{
		target: units.Acceleration,
		order:  [2]units.Dimension{units.Force, units.Mass},
		text:   "A net force of %s acts on a %s trolley. What acceleration results?",
	},
}

// templatesByTarget indexes the skeletons by their unknown quantity.
var templatesByTarget = map[units.Dimension][]problemTemplate{}

func init() {
	for _, t := range problemTemplates {
		templatesByTarget[t.target] = append(templatesByTarget[t.target], t)
	}
}

// LocalGenerator produces problems from the built-in templates with
// randomized values. It needs no LLM provider and never fails: mass and
// acceleration are drawn as small positive integers and the force is
// their product, so every problem is consistent and solvable.
type LocalGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewLocalGenerator returns a template generator with a randomly seeded
// source.
func NewLocalGenerator() *LocalGenerator {
	return &LocalGenerator{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// Generate picks a template for the requested target (or a random
// target) and fills it with randomized values.
func (g *LocalGenerator) Generate(_ context.Context, input GenerateInput) (*Problem, error) {
	g.mu.Lock()
	target := input.Target
	if !target.Valid() {
		dims := units.AllDimensions()
		target = dims[g.rng.IntN(len(dims))]
	}
	candidates := templatesByTarget[target]
	tmpl := candidates[g.rng.IntN(len(candidates))]
	mass := float64(g.rng.IntN(20) + 1)
	accel := float64(g.rng.IntN(10) + 1)
	g.mu.Unlock()

	force := mass * accel
	values := map[units.Dimension]float64{
		units.Mass:         mass,
		units.Acceleration: accel,
		units.Force:        force,
	}

	given := make(map[string]units.Quantity, 2)
	for _, d := range units.AllDimensions() {
		if d == target {
			continue
		}
		given[string(d)] = units.Quantity{Value: values[d], Unit: d.CanonicalUnit()}
	}

	return &Problem{
		Statement: fmt.Sprintf(tmpl.text,
			formatQuantity(values[tmpl.order[0]], tmpl.order[0]),
			formatQuantity(values[tmpl.order[1]], tmpl.order[1])),
		Given:      given,
		Target:     string(target),
		Answer:     units.Quantity{Value: values[target], Unit: target.CanonicalUnit()},
		Difficulty: rateDifficulty(force),
	}, nil
}

// formatQuantity renders a value with its canonical unit, e.g. "4 kg".
func formatQuantity(v float64, d units.Dimension) string {
	return fmt.Sprintf("%g %s", v, d.CanonicalUnit())
}

// rateDifficulty maps the size of the product to a 1-5 rating. Template
// problems never exceed 3; the upper ratings are left to LLM problems.
func rateDifficulty(force float64) int {
	switch {
	case force <= 20:
		return 1
	case force <= 60:
		return 2
	default:
		return 3
	}
}
