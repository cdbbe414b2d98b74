// Package metric exposes the Prometheus collectors for the tutor server.
//
// All collectors live on a private registry rather than the global default
// one, so embedders and tests never collide on metric names.
package metric

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "newton"

// Grading outcomes recorded by RecordSolve.
const (
	OutcomeCorrect   = "correct"
	OutcomeIncorrect = "incorrect"
	OutcomeUngraded  = "ungraded"
)

// Metrics holds every collector the server exports on /metrics.
type Metrics struct {
	SolvesTotal      *prometheus.CounterVec
	ErrorKindsTotal  *prometheus.CounterVec
	RejectedTotal    *prometheus.CounterVec
	SolveDuration    *prometheus.HistogramVec
	ProblemsTotal    *prometheus.CounterVec
	OntologyEntities *prometheus.GaugeVec
	HTTPDuration     *prometheus.HistogramVec

	registry *prometheus.Registry
}

// New builds the collector set and registers it, along with the standard Go
// and process collectors, on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		SolvesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "solve",
				Name:      "requests_total",
				Help:      "Solve requests by target quantity and grading outcome",
			},
			[]string{"target", "outcome"},
		),
		ErrorKindsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "solve",
				Name:      "error_kinds_total",
				Help:      "Classified student mistakes by target quantity and error kind",
			},
			[]string{"target", "kind"},
		),
		RejectedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "solve",
				Name:      "rejected_total",
				Help:      "Solve requests rejected before grading, by rejection reason",
			},
			[]string{"reason"},
		),
		SolveDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "solve",
				Name:      "duration_seconds",
				Help:      "Time spent solving and grading one request",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"target"},
		),
		ProblemsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "problem",
				Name:      "generated_total",
				Help:      "Practice problems handed out, by target quantity",
			},
			[]string{"target"},
		),
		OntologyEntities: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "ontology",
				Name:      "entities",
				Help:      "Entities loaded from the ontology, by entity kind",
			},
			[]string{"kind"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request latency by method, route template and status",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
	}

	m.registry = prometheus.NewRegistry()
	m.registry.MustRegister(
		m.SolvesTotal,
		m.ErrorKindsTotal,
		m.RejectedTotal,
		m.SolveDuration,
		m.ProblemsTotal,
		m.OntologyEntities,
		m.HTTPDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry returns the registry backing the /metrics endpoint.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordSolve counts one graded request and its duration.
func (m *Metrics) RecordSolve(target, outcome string, duration time.Duration) {
	m.SolvesTotal.WithLabelValues(target, outcome).Inc()
	m.SolveDuration.WithLabelValues(target).Observe(duration.Seconds())
}

// RecordErrorKind counts one classified student mistake.
func (m *Metrics) RecordErrorKind(target, kind string) {
	m.ErrorKindsTotal.WithLabelValues(target, kind).Inc()
}

// RecordRejected counts one request that failed validation.
func (m *Metrics) RecordRejected(reason string) {
	m.RejectedTotal.WithLabelValues(reason).Inc()
}

// RecordProblem counts one generated practice problem.
func (m *Metrics) RecordProblem(target string) {
	m.ProblemsTotal.WithLabelValues(target).Inc()
}

// RecordHTTPRequest observes one served request. Route is the matched route
// template, not the raw URL, so label cardinality stays bounded.
func (m *Metrics) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	m.HTTPDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(duration.Seconds())
}

// SetOntologySize publishes the size of the loaded ontology.
func (m *Metrics) SetOntologySize(triples, individuals, hints int) {
	m.OntologyEntities.WithLabelValues("triples").Set(float64(triples))
	m.OntologyEntities.WithLabelValues("individuals").Set(float64(individuals))
	m.OntologyEntities.WithLabelValues("hints").Set(float64(hints))
}
