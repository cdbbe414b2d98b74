package httpapi

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mykeomos/Newton-law-tutor/internal/diagnosis"
	"github.com/mykeomos/Newton-law-tutor/internal/metric"
	"github.com/mykeomos/Newton-law-tutor/internal/ontology"
	"github.com/mykeomos/Newton-law-tutor/internal/problemgen"
	"github.com/mykeomos/Newton-law-tutor/internal/tutor"
	"github.com/mykeomos/Newton-law-tutor/internal/units"
)

const maxBodyBytes = 1 << 20

func (s *Server) handleSolve(c *gin.Context) {
	start := time.Now()

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err != nil {
		s.reject(c, &tutor.RequestError{Kind: tutor.InvalidInput, Message: "request body unreadable or too large"})
		return
	}

	req, err := tutor.DecodeRequest(body)
	if err != nil {
		s.reject(c, tutor.AsRequestError(err))
		return
	}

	resp, err := s.tutor.Solve(c.Request.Context(), req)
	if err != nil {
		s.reject(c, tutor.AsRequestError(err))
		return
	}

	outcome := metric.OutcomeUngraded
	switch {
	case resp.IsCorrect == nil:
	case *resp.IsCorrect:
		outcome = metric.OutcomeCorrect
	default:
		outcome = metric.OutcomeIncorrect
	}
	s.metrics.RecordSolve(req.Target, outcome, time.Since(start))
	if resp.ErrorType != nil {
		s.metrics.RecordErrorKind(req.Target, string(*resp.ErrorType))
	}

	c.JSON(http.StatusOK, resp)
}

// reject writes the 400 body for a taxonomy error and counts it.
func (s *Server) reject(c *gin.Context, reqErr *tutor.RequestError) {
	s.metrics.RecordRejected(reqErr.Kind)
	c.JSON(http.StatusBadRequest, reqErr)
}

func (s *Server) handleProblem(c *gin.Context) {
	var input problemgen.GenerateInput
	if t := c.Query("target"); t != "" {
		d := units.Dimension(t)
		if !d.Valid() {
			s.reject(c, &tutor.RequestError{
				Kind:    tutor.InvalidInput,
				Message: fmt.Sprintf("unknown target %q: expected mass, acceleration or force", t),
			})
			return
		}
		input.Target = d
	}

	p, err := s.problems.Generate(c.Request.Context(), input)
	if err != nil {
		s.log.ErrorContext(c.Request.Context(), "problem generation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal", "message": "problem generation failed"})
		return
	}

	s.metrics.RecordProblem(p.Target)
	c.JSON(http.StatusOK, p)
}

// unitRow is one entry of the supported-unit table.
type unitRow struct {
	Symbol    string  `json:"symbol"`
	Factor    float64 `json:"factor"`
	Canonical bool    `json:"canonical"`
}

func (s *Server) handleUnits(c *gin.Context) {
	out := make(map[string][]unitRow)
	for _, d := range units.AllDimensions() {
		canonical := d.CanonicalUnit()
		for _, u := range units.UnitsFor(d) {
			out[string(d)] = append(out[string(d)], unitRow{
				Symbol:    u.Symbol,
				Factor:    u.Factor,
				Canonical: u.Symbol == canonical,
			})
		}
	}
	c.JSON(http.StatusOK, out)
}

// handleHints renders the effective hint table: what the selector would say
// for every target and error kind, providers and overrides included.
func (s *Server) handleHints(c *gin.Context) {
	kinds := diagnosis.AllKinds()
	out := make(map[string]map[string]string)
	for _, d := range units.AllDimensions() {
		row := make(map[string]string, len(kinds))
		for _, kind := range kinds {
			row[string(kind)] = s.hints.Select(d, kind)
		}
		out[string(d)] = row
	}
	c.JSON(http.StatusOK, out)
}

type healthResponse struct {
	Status        string            `json:"status"`
	Version       string            `json:"version,omitempty"`
	UptimeSeconds float64           `json:"uptimeSeconds"`
	Ontology      *ontology.Summary `json:"ontology,omitempty"`
}

func (s *Server) handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{
		Status:        "ok",
		Version:       s.version,
		UptimeSeconds: time.Since(s.started).Round(time.Second).Seconds(),
		Ontology:      s.ontology,
	})
}
