package httpapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/mykeomos/Newton-law-tutor/internal/config"
	"github.com/mykeomos/Newton-law-tutor/internal/diagnosis"
	"github.com/mykeomos/Newton-law-tutor/internal/hints"
	"github.com/mykeomos/Newton-law-tutor/internal/metric"
	"github.com/mykeomos/Newton-law-tutor/internal/ontology"
	"github.com/mykeomos/Newton-law-tutor/internal/problemgen"
	"github.com/mykeomos/Newton-law-tutor/internal/tutor"
	"github.com/mykeomos/Newton-law-tutor/internal/units"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.Default()
	cfg.Web.Dir = ""
	return New(cfg, Deps{Logger: quietLogger(), Version: "1.2.3-test"})
}

func doRequest(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

const wrongAnswerBody = `{
	"given": {
		"mass": {"value": 4, "unit": "kg"},
		"acceleration": {"value": 3, "unit": "m/s^2"}
	},
	"target": "force",
	"studentAnswer": {"value": 11, "unit": "N"}
}`

func TestSolveEndpoint_WrongAnswer(t *testing.T) {
	s := newTestServer(t)
	w := doRequest(t, s, http.MethodPost, "/api/solve", wrongAnswerBody)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp tutor.SolveResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.CorrectValue != 12 || resp.Unit != "N" {
		t.Errorf("expected 12 N, got %g %s", resp.CorrectValue, resp.Unit)
	}
	if resp.IsCorrect == nil || *resp.IsCorrect {
		t.Error("expected isCorrect false")
	}
	if resp.ErrorType == nil || *resp.ErrorType != diagnosis.KindArithmetic {
		t.Errorf("expected ARITHMETIC, got %v", resp.ErrorType)
	}
	if resp.Hint == nil || *resp.Hint == "" {
		t.Error("expected a hint")
	}
}

func TestSolveEndpoint_CorrectAnswer(t *testing.T) {
	s := newTestServer(t)
	body := strings.Replace(wrongAnswerBody, `"value": 11`, `"value": 12`, 1)
	w := doRequest(t, s, http.MethodPost, "/api/solve", body)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp tutor.SolveResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.IsCorrect == nil || !*resp.IsCorrect {
		t.Error("expected isCorrect true")
	}
	if resp.ErrorType != nil || resp.Hint != nil {
		t.Errorf("expected null errorType and hint, got %v %v", resp.ErrorType, resp.Hint)
	}

	// The wire format spells the absent fields as explicit nulls.
	raw := w.Body.String()
	for _, key := range []string{`"errorType":null`, `"hint":null`} {
		if !strings.Contains(raw, key) {
			t.Errorf("expected body to contain %s, got %s", key, raw)
		}
	}
}

func TestSolveEndpoint_NoStudentAnswer(t *testing.T) {
	s := newTestServer(t)
	body := `{
		"given": {
			"mass": {"value": 4, "unit": "kg"},
			"acceleration": {"value": 3, "unit": "m/s^2"}
		},
		"target": "force"
	}`
	w := doRequest(t, s, http.MethodPost, "/api/solve", body)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	raw := w.Body.String()
	if !strings.Contains(raw, `"isCorrect":null`) {
		t.Errorf("expected ungraded solve, got %s", raw)
	}
}

func TestSolveEndpoint_UnknownUnit(t *testing.T) {
	s := newTestServer(t)
	body := strings.Replace(wrongAnswerBody, `"unit": "kg"`, `"unit": "lb"`, 1)
	w := doRequest(t, s, http.MethodPost, "/api/solve", body)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", w.Code, w.Body.String())
	}

	var reqErr tutor.RequestError
	if err := json.Unmarshal(w.Body.Bytes(), &reqErr); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	if reqErr.Kind != tutor.UnitError {
		t.Errorf("expected kind UnitError, got %q", reqErr.Kind)
	}
	if !strings.Contains(reqErr.Message, "lb") {
		t.Errorf("expected message to name the unit, got %q", reqErr.Message)
	}
}

func TestSolveEndpoint_ZeroDivisor(t *testing.T) {
	s := newTestServer(t)
	body := `{
		"given": {
			"force": {"value": 10, "unit": "N"},
			"acceleration": {"value": 0, "unit": "m/s^2"}
		},
		"target": "mass"
	}`
	w := doRequest(t, s, http.MethodPost, "/api/solve", body)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), tutor.DegenerateInputError) {
		t.Errorf("expected DegenerateInputError, got %s", w.Body.String())
	}
}

func TestSolveEndpoint_MalformedJSON(t *testing.T) {
	s := newTestServer(t)
	w := doRequest(t, s, http.MethodPost, "/api/solve", "{")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), tutor.InvalidInput) {
		t.Errorf("expected InvalidInput, got %s", w.Body.String())
	}
}

func TestSolveEndpoint_RecordsMetrics(t *testing.T) {
	m := metric.New()
	cfg := config.Default()
	cfg.Web.Dir = ""
	s := New(cfg, Deps{Logger: quietLogger(), Metrics: m})

	doRequest(t, s, http.MethodPost, "/api/solve", wrongAnswerBody)
	doRequest(t, s, http.MethodPost, "/api/solve", "{")

	if got := testutil.ToFloat64(m.SolvesTotal.WithLabelValues("force", metric.OutcomeIncorrect)); got != 1 {
		t.Errorf("expected 1 incorrect solve, got %g", got)
	}
	if got := testutil.ToFloat64(m.ErrorKindsTotal.WithLabelValues("force", "ARITHMETIC")); got != 1 {
		t.Errorf("expected 1 arithmetic classification, got %g", got)
	}
	if got := testutil.ToFloat64(m.RejectedTotal.WithLabelValues(tutor.InvalidInput)); got != 1 {
		t.Errorf("expected 1 rejected request, got %g", got)
	}
}

func TestProblemEndpoint(t *testing.T) {
	s := newTestServer(t)
	w := doRequest(t, s, http.MethodGet, "/api/problem", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var p problemgen.Problem
	if err := json.Unmarshal(w.Body.Bytes(), &p); err != nil {
		t.Fatalf("failed to decode problem: %v", err)
	}
	if !units.Dimension(p.Target).Valid() {
		t.Errorf("unexpected target %q", p.Target)
	}
	if err := problemgen.CheckConsistency(&p); err != nil {
		t.Errorf("generated problem is inconsistent: %v", err)
	}
}

func TestProblemEndpoint_TargetFilter(t *testing.T) {
	s := newTestServer(t)
	w := doRequest(t, s, http.MethodGet, "/api/problem?target=mass", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	var p problemgen.Problem
	if err := json.Unmarshal(w.Body.Bytes(), &p); err != nil {
		t.Fatalf("failed to decode problem: %v", err)
	}
	if p.Target != "mass" {
		t.Errorf("expected target mass, got %q", p.Target)
	}
}

func TestProblemEndpoint_UnknownTarget(t *testing.T) {
	s := newTestServer(t)
	w := doRequest(t, s, http.MethodGet, "/api/problem?target=energy", "")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "energy") {
		t.Errorf("expected message to name the target, got %s", w.Body.String())
	}
}

func TestUnitsEndpoint(t *testing.T) {
	s := newTestServer(t)
	w := doRequest(t, s, http.MethodGet, "/api/units", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var table map[string][]unitRow
	if err := json.Unmarshal(w.Body.Bytes(), &table); err != nil {
		t.Fatalf("failed to decode unit table: %v", err)
	}

	mass, ok := table["mass"]
	if !ok {
		t.Fatal("expected a mass section")
	}
	foundKg, foundG := false, false
	for _, row := range mass {
		switch row.Symbol {
		case "kg":
			foundKg = true
			if !row.Canonical || row.Factor != 1 {
				t.Errorf("unexpected kg row: %+v", row)
			}
		case "g":
			foundG = true
			if row.Canonical || row.Factor != 0.001 {
				t.Errorf("unexpected g row: %+v", row)
			}
		}
	}
	if !foundKg || !foundG {
		t.Errorf("expected kg and g rows, got %+v", mass)
	}
}

func TestHintsEndpoint(t *testing.T) {
	s := newTestServer(t)
	w := doRequest(t, s, http.MethodGet, "/api/hints", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var table map[string]map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &table); err != nil {
		t.Fatalf("failed to decode hint table: %v", err)
	}

	for _, d := range units.AllDimensions() {
		row, ok := table[string(d)]
		if !ok {
			t.Fatalf("missing row for %s", d)
		}
		for _, kind := range diagnosis.AllKinds() {
			if row[string(kind)] == "" {
				t.Errorf("empty hint for %s/%s", d, kind)
			}
		}
	}

	want, _ := hints.Static().Lookup(units.Force, diagnosis.KindArithmetic)
	if table["force"]["ARITHMETIC"] != want {
		t.Errorf("expected static arithmetic hint, got %q", table["force"]["ARITHMETIC"])
	}
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t)
	w := doRequest(t, s, http.MethodGet, "/healthz", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var health healthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &health); err != nil {
		t.Fatalf("failed to decode health: %v", err)
	}
	if health.Status != "ok" {
		t.Errorf("expected status ok, got %q", health.Status)
	}
	if health.Version != "1.2.3-test" {
		t.Errorf("expected version 1.2.3-test, got %q", health.Version)
	}
	if health.Ontology != nil {
		t.Errorf("expected no ontology summary, got %+v", health.Ontology)
	}
}

func TestHealthz_OntologySummary(t *testing.T) {
	cfg := config.Default()
	cfg.Web.Dir = ""
	s := New(cfg, Deps{
		Logger:   quietLogger(),
		Ontology: ontology.NewProvider(ontology.Embedded()),
	})

	w := doRequest(t, s, http.MethodGet, "/healthz", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var health healthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &health); err != nil {
		t.Fatalf("failed to decode health: %v", err)
	}
	if health.Ontology == nil {
		t.Fatal("expected an ontology summary")
	}
	if health.Ontology.Triples == 0 || health.Ontology.Hints == 0 {
		t.Errorf("expected a populated summary, got %+v", health.Ontology)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)
	doRequest(t, s, http.MethodPost, "/api/solve", wrongAnswerBody)

	w := doRequest(t, s, http.MethodGet, "/metrics", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	for _, name := range []string{"newton_solve_requests_total", "go_goroutines"} {
		if !strings.Contains(w.Body.String(), name) {
			t.Errorf("expected metrics body to contain %s", name)
		}
	}
}

func TestRequestIDEcho(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	if got := w.Header().Get(requestIDHeader); got != "abc-123" {
		t.Errorf("expected request ID to be echoed, got %q", got)
	}
}

func TestRequestIDAssigned(t *testing.T) {
	s := newTestServer(t)
	w := doRequest(t, s, http.MethodGet, "/healthz", "")

	if w.Header().Get(requestIDHeader) == "" {
		t.Error("expected a generated request ID header")
	}
}

func TestCORS_Wildcard(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/solve", nil)
	req.Header.Set("Origin", "https://tutor.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("expected wildcard allow origin, got %q", got)
	}
}

func TestCORS_ExplicitOrigin(t *testing.T) {
	cfg := config.Default()
	cfg.Web.Dir = ""
	cfg.Server.CORSOrigins = []string{"https://tutor.example.com"}
	s := New(cfg, Deps{Logger: quietLogger()})

	req := httptest.NewRequest(http.MethodOptions, "/api/solve", nil)
	req.Header.Set("Origin", "https://tutor.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://tutor.example.com" {
		t.Errorf("expected explicit allow origin, got %q", got)
	}
}

func TestStaticPage(t *testing.T) {
	dir := t.TempDir()
	page := "<html><body>Newton practice</body></html>"
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte(page), 0o644); err != nil {
		t.Fatalf("failed to write page: %v", err)
	}

	cfg := config.Default()
	cfg.Web.Dir = dir
	s := New(cfg, Deps{Logger: quietLogger()})

	w := doRequest(t, s, http.MethodGet, "/", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Newton practice") {
		t.Errorf("expected the practice page, got %s", w.Body.String())
	}

	// Unknown API paths still answer JSON, not the page.
	w = doRequest(t, s, http.MethodGet, "/api/nope", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "NotFound") {
		t.Errorf("expected a JSON 404, got %s", w.Body.String())
	}
}

func TestStaticPage_Disabled(t *testing.T) {
	s := newTestServer(t)
	w := doRequest(t, s, http.MethodGet, "/", "")

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404 without a web dir, got %d", w.Code)
	}
}
