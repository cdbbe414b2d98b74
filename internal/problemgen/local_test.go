package problemgen

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/mykeomos/Newton-law-tutor/internal/units"
)

func seededGenerator() *LocalGenerator {
	return &LocalGenerator{rng: rand.New(rand.NewPCG(1, 2))}
}

func TestLocalGenerate_AllTargets(t *testing.T) {
	gen := seededGenerator()
	for _, target := range units.AllDimensions() {
		p, err := gen.Generate(context.Background(), GenerateInput{Target: target})
		if err != nil {
			t.Fatalf("Generate(%s) error = %v", target, err)
		}
		if p.Target != string(target) {
			t.Errorf("Target = %q, want %q", p.Target, target)
		}
		if p.Answer.Unit != target.CanonicalUnit() {
			t.Errorf("Answer.Unit = %q, want %q", p.Answer.Unit, target.CanonicalUnit())
		}
		if err := CheckConsistency(p); err != nil {
			t.Errorf("generated problem is inconsistent: %v", err)
		}
	}
}

func TestLocalGenerate_PassesDefaultValidators(t *testing.T) {
	gen := seededGenerator()
	cfg := DefaultConfig()
	for i := 0; i < 30; i++ {
		p, err := gen.Generate(context.Background(), GenerateInput{})
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		for _, v := range cfg.Validators {
			if verr := v.Validate(p, GenerateInput{}); verr != nil {
				t.Errorf("problem %q failed %s: %v", p.Statement, v.Name(), verr)
			}
		}
	}
}

func TestLocalGenerate_StatementNamesGivens(t *testing.T) {
	gen := seededGenerator()
	for i := 0; i < 20; i++ {
		p, err := gen.Generate(context.Background(), GenerateInput{})
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		for name, q := range p.Given {
			want := fmt.Sprintf("%g %s", q.Value, q.Unit)
			if !strings.Contains(p.Statement, want) {
				t.Errorf("statement %q does not mention %s as %q", p.Statement, name, want)
			}
		}
	}
}

func TestLocalGenerate_ValuesAreSmallIntegers(t *testing.T) {
	gen := seededGenerator()
	for i := 0; i < 50; i++ {
		p, err := gen.Generate(context.Background(), GenerateInput{})
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		for name, q := range p.Given {
			if q.Value != math.Trunc(q.Value) {
				t.Errorf("%s value %g is not an integer", name, q.Value)
			}
			if q.Value < 1 || q.Value > 200 {
				t.Errorf("%s value %g out of range", name, q.Value)
			}
		}
		if p.Difficulty < 1 || p.Difficulty > 3 {
			t.Errorf("Difficulty = %d, want 1-3 for template problems", p.Difficulty)
		}
	}
}

func TestLocalGenerate_RandomTargetCoversAll(t *testing.T) {
	gen := seededGenerator()
	seen := make(map[string]bool)
	for i := 0; i < 60; i++ {
		p, err := gen.Generate(context.Background(), GenerateInput{})
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		seen[p.Target] = true
	}
	for _, target := range units.AllDimensions() {
		if !seen[string(target)] {
			t.Errorf("target %s never generated in 60 draws", target)
		}
	}
}

func TestTemplates_CoverEveryTarget(t *testing.T) {
	for _, target := range units.AllDimensions() {
		if len(templatesByTarget[target]) == 0 {
			t.Errorf("no templates for target %s", target)
		}
	}
	for _, tmpl := range problemTemplates {
		if strings.Count(tmpl.text, "%s") != 2 {
			t.Errorf("template %q must carry exactly two %%s verbs", tmpl.text)
		}
		for _, d := range tmpl.order {
			if d == tmpl.target {
				t.Errorf("template %q fills its own target", tmpl.text)
			}
		}
	}
}
