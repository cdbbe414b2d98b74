package tutor

import (
	"context"

	"github.com/mykeomos/Newton-law-tutor/internal/answer"
	"github.com/mykeomos/Newton-law-tutor/internal/diagnosis"
	"github.com/mykeomos/Newton-law-tutor/internal/hints"
	"github.com/mykeomos/Newton-law-tutor/internal/newton"
	"github.com/mykeomos/Newton-law-tutor/internal/units"
)

// Service runs the solve pipeline. It holds no mutable state and is
// safe for concurrent use.
type Service struct {
	tol      answer.Tolerance
	diag     *diagnosis.Service
	selector *hints.Selector
}

// NewService wires the pipeline. A nil diagnosis service gets the
// default rule chain without an LLM phase, a nil selector falls back to
// the built-in hint tables, and a zero tolerance gets the defaults.
// The caller owns the lifecycle of a diagnosis service it passes in.
func NewService(diag *diagnosis.Service, selector *hints.Selector, tol answer.Tolerance) *Service {
	if diag == nil {
		diag = diagnosis.NewService(nil)
	}
	if selector == nil {
		selector = hints.NewSelector()
	}
	if tol == (answer.Tolerance{}) {
		tol = answer.DefaultTolerance()
	}
	return &Service{tol: tol, diag: diag, selector: selector}
}

// Solve runs a decoded request through the pipeline:
// normalize, solve for the target, and when a student answer is
// present, grade it, classify the mistake and pick a hint.
func (s *Service) Solve(ctx context.Context, req *SolveRequest) (*SolveResponse, error) {
	target, given, err := s.normalize(req)
	if err != nil {
		return nil, AsRequestError(err)
	}

	correct, err := newton.Solve(given, target)
	if err != nil {
		return nil, AsRequestError(err)
	}

	resp := &SolveResponse{
		CorrectValue: correct,
		Unit:         target.CanonicalUnit(),
	}
	if req.StudentAnswer == nil {
		return resp, nil
	}

	student, err := units.Normalize(*req.StudentAnswer, target)
	if err != nil {
		return nil, AsRequestError(err)
	}

	isCorrect := answer.Evaluate(student, correct, s.tol)
	resp.IsCorrect = &isCorrect
	if isCorrect {
		return resp, nil
	}

	result := s.diag.Diagnose(ctx, &diagnosis.ClassifyInput{
		Student: student,
		Correct: correct,
		Given:   given,
		Target:  target,
		Tol:     s.tol,
	}, nil)

	kind := result.Kind
	hint := s.selector.Select(target, kind)
	resp.ErrorType = &kind
	resp.Hint = &hint
	return resp, nil
}

// SolveJSON decodes and validates a raw request body, then solves it.
func (s *Service) SolveJSON(ctx context.Context, raw []byte) (*SolveResponse, error) {
	req, err := DecodeRequest(raw)
	if err != nil {
		return nil, err
	}
	return s.Solve(ctx, req)
}

// normalize checks the cross-field rules the schema cannot express and
// converts the given quantities to canonical SI values.
func (s *Service) normalize(req *SolveRequest) (units.Dimension, map[units.Dimension]float64, error) {
	target := units.Dimension(req.Target)
	if !target.Valid() {
		return "", nil, invalidInputf("unknown target %q", req.Target)
	}
	if len(req.Given) != 2 {
		return "", nil, invalidInputf("given must hold exactly 2 quantities, got %d", len(req.Given))
	}

	given := make(map[units.Dimension]float64, len(req.Given))
	for name, q := range req.Given {
		dim := units.Dimension(name)
		if !dim.Valid() {
			return "", nil, invalidInputf("unknown quantity %q", name)
		}
		if dim == target {
			return "", nil, invalidInputf("target %q must not appear in given", name)
		}
		v, err := units.Normalize(q, dim)
		if err != nil {
			return "", nil, err
		}
		given[dim] = v
	}
	return target, given, nil
}
