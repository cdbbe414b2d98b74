package diagnosis

import (
	"context"

	"github.com/mykeomos/Newton-law-tutor/internal/llm"
	"github.com/mykeomos/Newton-law-tutor/internal/newton"
	"github.com/mykeomos/Newton-law-tutor/internal/units"
)

const llmQueueDepth = 32

// Service layers misconception identification over the rule classifiers.
// Rules answer synchronously; the LLM, when configured, refines unclassified
// mistakes in the background.
type Service struct {
	classifiers []Classifier
	diagnoser   *Diagnoser
	jobs        chan llmJob
}

type llmJob struct {
	ctx context.Context
	req *DiagnosisRequest
	cb  func(*DiagnosisResult)
}

// NewService builds the diagnosis pipeline. A nil provider disables the LLM
// phase; with no explicit classifiers the default chain runs.
func NewService(provider llm.Provider, classifiers ...Classifier) *Service {
	if len(classifiers) == 0 {
		classifiers = DefaultClassifiers()
	}
	s := &Service{
		classifiers: classifiers,
		jobs:        make(chan llmJob, llmQueueDepth),
	}
	if provider != nil {
		s.diagnoser = NewDiagnoser(provider, DefaultDiagnoserConfig())
		go s.runLLMJobs()
	}
	return s
}

// Diagnose classifies a wrong answer. The returned result reflects the rule
// classifiers only; when they are inconclusive and an LLM is configured, cb
// fires later with the model's verdict.
func (s *Service) Diagnose(ctx context.Context, input *ClassifyInput, cb func(*DiagnosisResult)) *DiagnosisResult {
	kind, conf, name := RunClassifiers(s.classifiers, input)
	if kind != "" {
		return &DiagnosisResult{
			Kind:           kind,
			Confidence:     conf,
			ClassifierName: name,
		}
	}

	if s.diagnoser != nil {
		s.queueLLMJob(ctx, input, cb)
	}

	return &DiagnosisResult{
		Kind:           KindUnclassified,
		Confidence:     0,
		ClassifierName: "none",
	}
}

// queueLLMJob hands the wrong answer to the background loop. A full queue
// drops the job rather than delaying the grade.
func (s *Service) queueLLMJob(ctx context.Context, input *ClassifyInput, cb func(*DiagnosisResult)) {
	candidates := AllMisconceptions()
	if len(candidates) == 0 {
		return
	}

	// Givens render in dimension order so prompts are deterministic.
	var given []GivenValue
	for _, d := range units.AllDimensions() {
		if v, ok := input.Given[d]; ok {
			given = append(given, GivenValue{Name: d, Value: v, Unit: d.CanonicalUnit()})
		}
	}

	job := llmJob{
		ctx: ctx,
		req: &DiagnosisRequest{
			Target:       input.Target,
			Formula:      newton.Formula(input.Target),
			Given:        given,
			CorrectValue: input.Correct,
			StudentValue: input.Student,
			Candidates:   candidates,
		},
		cb: cb,
	}

	select {
	case s.jobs <- job:
	default:
	}
}

func (s *Service) runLLMJobs() {
	for job := range s.jobs {
		result, err := s.diagnoser.Diagnose(job.ctx, job.req)
		if err != nil || result == nil {
			continue
		}
		if job.cb != nil {
			job.cb(result)
		}
	}
}

// Close stops the background loop. Jobs already queued still run.
func (s *Service) Close() {
	close(s.jobs)
}
