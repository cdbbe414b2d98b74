package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mykeomos/Newton-law-tutor/internal/diagnosis"
)

var envVars = []string{
	"NEWTON_LISTEN_ADDR",
	"NEWTON_CORS_ORIGINS",
	"NEWTON_ONTOLOGY_PATH",
	"NEWTON_KB_PATH",
	"NEWTON_WEB_DIR",
	"NEWTON_REL_TOLERANCE",
	"NEWTON_ABS_TOLERANCE",
	"NEWTON_ARITHMETIC_BAND",
	"NEWTON_LLM_HINTS",
}

// clearEnv blanks every override so tests see file and default values only.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, v := range envVars {
		t.Setenv(v, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "newton-tutor.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Server.Addr != ":8080" {
		t.Errorf("expected addr :8080, got %q", cfg.Server.Addr)
	}
	if len(cfg.Server.CORSOrigins) != 1 || cfg.Server.CORSOrigins[0] != "*" {
		t.Errorf("expected wildcard CORS origin, got %v", cfg.Server.CORSOrigins)
	}
	if cfg.Web.Dir != "web" {
		t.Errorf("expected web dir %q, got %q", "web", cfg.Web.Dir)
	}
	if cfg.Grading.RelTolerance != 0.01 || cfg.Grading.AbsTolerance != 1e-6 {
		t.Errorf("unexpected default tolerance: %+v", cfg.Grading)
	}
	if cfg.Grading.ArithmeticBand != diagnosis.ArithmeticBand {
		t.Errorf("expected arithmetic band %g, got %g", diagnosis.ArithmeticBand, cfg.Grading.ArithmeticBand)
	}
	if cfg.KB.Path != "" || cfg.Ontology.Path != "" {
		t.Errorf("expected empty kb and ontology paths, got %+v", cfg)
	}
}

func TestLoad_NoFile(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("expected default addr, got %q", cfg.Server.Addr)
	}
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
server:
  addr: ":9090"
  corsOrigins:
    - "https://tutor.example.com"
ontology:
  path: "custom.ttl"
kb:
  path: "kb.db"
grading:
  relTolerance: 0.05
  arithmeticBand: 0.3
hints:
  llm: true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Addr != ":9090" {
		t.Errorf("expected addr :9090, got %q", cfg.Server.Addr)
	}
	if len(cfg.Server.CORSOrigins) != 1 || cfg.Server.CORSOrigins[0] != "https://tutor.example.com" {
		t.Errorf("unexpected CORS origins: %v", cfg.Server.CORSOrigins)
	}
	if cfg.Ontology.Path != "custom.ttl" || cfg.KB.Path != "kb.db" {
		t.Errorf("unexpected paths: %+v", cfg)
	}
	if cfg.Grading.RelTolerance != 0.05 {
		t.Errorf("expected rel tolerance 0.05, got %g", cfg.Grading.RelTolerance)
	}
	if cfg.Grading.AbsTolerance != 1e-6 {
		t.Errorf("expected abs tolerance to keep its default, got %g", cfg.Grading.AbsTolerance)
	}
	if cfg.Grading.ArithmeticBand != 0.3 {
		t.Errorf("expected arithmetic band 0.3, got %g", cfg.Grading.ArithmeticBand)
	}
	if !cfg.Hints.LLM {
		t.Error("expected LLM hints enabled")
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "server: [")

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "server:\n  addr: \":9090\"\n")

	t.Setenv("NEWTON_LISTEN_ADDR", ":7070")
	t.Setenv("NEWTON_CORS_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("NEWTON_WEB_DIR", "public")
	t.Setenv("NEWTON_ARITHMETIC_BAND", "0.25")
	t.Setenv("NEWTON_LLM_HINTS", "true")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Addr != ":7070" {
		t.Errorf("expected env to win over file, got %q", cfg.Server.Addr)
	}
	want := []string{"https://a.example.com", "https://b.example.com"}
	if len(cfg.Server.CORSOrigins) != 2 || cfg.Server.CORSOrigins[0] != want[0] || cfg.Server.CORSOrigins[1] != want[1] {
		t.Errorf("expected origins %v, got %v", want, cfg.Server.CORSOrigins)
	}
	if cfg.Web.Dir != "public" {
		t.Errorf("expected web dir public, got %q", cfg.Web.Dir)
	}
	if cfg.Grading.ArithmeticBand != 0.25 {
		t.Errorf("expected arithmetic band 0.25, got %g", cfg.Grading.ArithmeticBand)
	}
	if !cfg.Hints.LLM {
		t.Error("expected LLM hints enabled")
	}
}

func TestLoad_BadNumericEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("NEWTON_REL_TOLERANCE", "generous")

	_, err := Load("")
	if err == nil {
		t.Fatal("expected error for unparseable tolerance")
	}
	if !strings.Contains(err.Error(), "NEWTON_REL_TOLERANCE") {
		t.Errorf("expected error to name the variable, got %v", err)
	}
}

func TestLoad_BadBoolEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("NEWTON_LLM_HINTS", "maybe")

	if _, err := Load(""); err == nil {
		t.Fatal("expected error for unparseable bool")
	}
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty addr", func(c *Config) { c.Server.Addr = "" }},
		{"negative rel tolerance", func(c *Config) { c.Grading.RelTolerance = -0.1 }},
		{"rel tolerance of one", func(c *Config) { c.Grading.RelTolerance = 1.0 }},
		{"negative abs tolerance", func(c *Config) { c.Grading.AbsTolerance = -1 }},
		{"band above one", func(c *Config) { c.Grading.ArithmeticBand = 1.5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestTolerance(t *testing.T) {
	cfg := Default()
	cfg.Grading.RelTolerance = 0.02
	cfg.Grading.AbsTolerance = 1e-3

	tol := cfg.Tolerance()
	if tol.Rel != 0.02 || tol.AbsFloor != 1e-3 {
		t.Errorf("unexpected tolerance: %+v", tol)
	}
}

func TestClassifiers_Band(t *testing.T) {
	cfg := Default()
	cfg.Grading.ArithmeticBand = 0.5

	chain := cfg.Classifiers()
	if len(chain) != 4 {
		t.Fatalf("expected 4 classifiers, got %d", len(chain))
	}
	last, ok := chain[len(chain)-1].(*diagnosis.ArithmeticClassifier)
	if !ok {
		t.Fatalf("expected arithmetic classifier last, got %T", chain[len(chain)-1])
	}
	if last.Band != 0.5 {
		t.Errorf("expected band 0.5, got %g", last.Band)
	}
}

func TestSplitOrigins(t *testing.T) {
	got := splitOrigins(" https://a.example.com , ,https://b.example.com ")
	if len(got) != 2 || got[0] != "https://a.example.com" || got[1] != "https://b.example.com" {
		t.Errorf("unexpected origins: %v", got)
	}
}
