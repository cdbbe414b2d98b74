// Package config loads server settings from an optional YAML file with
// NEWTON_* environment overrides layered on top. LLM provider settings are
// separate and read by internal/llm.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mykeomos/Newton-law-tutor/internal/answer"
	"github.com/mykeomos/Newton-law-tutor/internal/diagnosis"
)

// DefaultPath is the config file consulted when no --config flag is given.
const DefaultPath = "newton-tutor.yaml"

// Config holds everything the serve command needs.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Ontology OntologyConfig `yaml:"ontology"`
	KB       KBConfig       `yaml:"kb"`
	Web      WebConfig      `yaml:"web"`
	Grading  GradingConfig  `yaml:"grading"`
	Hints    HintsConfig    `yaml:"hints"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr        string   `yaml:"addr"`        // Default ":8080"
	CORSOrigins []string `yaml:"corsOrigins"` // Default ["*"]; empty list disables CORS
}

// OntologyConfig points at a Turtle or RDF/XML ontology file.
type OntologyConfig struct {
	Path string `yaml:"path"` // Empty: use the embedded ontology
}

// KBConfig points at the optional SQLite knowledge base.
type KBConfig struct {
	Path string `yaml:"path"` // Empty: run without a knowledge base
}

// WebConfig locates the static practice page.
type WebConfig struct {
	Dir string `yaml:"dir"` // Default "web"; served only when the dir exists
}

// GradingConfig tunes answer acceptance and mistake classification.
type GradingConfig struct {
	RelTolerance   float64 `yaml:"relTolerance"`   // Default 0.01
	AbsTolerance   float64 `yaml:"absTolerance"`   // Default 1e-6
	ArithmeticBand float64 `yaml:"arithmeticBand"` // Default 0.20
}

// HintsConfig toggles LLM hint enrichment.
type HintsConfig struct {
	LLM bool `yaml:"llm"`
}

// Default returns the zero-config server settings.
func Default() *Config {
	tol := answer.DefaultTolerance()
	return &Config{
		Server: ServerConfig{
			Addr:        ":8080",
			CORSOrigins: []string{"*"},
		},
		Web: WebConfig{Dir: "web"},
		Grading: GradingConfig{
			RelTolerance:   tol.Rel,
			AbsTolerance:   tol.AbsFloor,
			ArithmeticBand: diagnosis.ArithmeticBand,
		},
	}
}

// Load reads the YAML file at path, then applies environment overrides.
// An empty path consults DefaultPath and skips it silently when absent;
// an explicit path must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
		}
	case explicit || !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("NEWTON_LISTEN_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("NEWTON_CORS_ORIGINS"); v != "" {
		c.Server.CORSOrigins = splitOrigins(v)
	}
	if v := os.Getenv("NEWTON_ONTOLOGY_PATH"); v != "" {
		c.Ontology.Path = v
	}
	if v := os.Getenv("NEWTON_KB_PATH"); v != "" {
		c.KB.Path = v
	}
	if v := os.Getenv("NEWTON_WEB_DIR"); v != "" {
		c.Web.Dir = v
	}

	if v := os.Getenv("NEWTON_REL_TOLERANCE"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("NEWTON_REL_TOLERANCE: %w", err)
		}
		c.Grading.RelTolerance = f
	}
	if v := os.Getenv("NEWTON_ABS_TOLERANCE"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("NEWTON_ABS_TOLERANCE: %w", err)
		}
		c.Grading.AbsTolerance = f
	}
	if v := os.Getenv("NEWTON_ARITHMETIC_BAND"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("NEWTON_ARITHMETIC_BAND: %w", err)
		}
		c.Grading.ArithmeticBand = f
	}
	if v := os.Getenv("NEWTON_LLM_HINTS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("NEWTON_LLM_HINTS: %w", err)
		}
		c.Hints.LLM = b
	}
	return nil
}

// Validate checks value ranges after file and environment are merged.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server addr must not be empty")
	}
	if c.Grading.RelTolerance < 0 || c.Grading.RelTolerance >= 1 {
		return fmt.Errorf("relative tolerance %g out of range [0, 1)", c.Grading.RelTolerance)
	}
	if c.Grading.AbsTolerance < 0 {
		return fmt.Errorf("absolute tolerance %g must not be negative", c.Grading.AbsTolerance)
	}
	if c.Grading.ArithmeticBand < 0 || c.Grading.ArithmeticBand > 1 {
		return fmt.Errorf("arithmetic band %g out of range [0, 1]", c.Grading.ArithmeticBand)
	}
	return nil
}

// Tolerance returns the grading tolerance described by the config.
func (c *Config) Tolerance() answer.Tolerance {
	return answer.Tolerance{Rel: c.Grading.RelTolerance, AbsFloor: c.Grading.AbsTolerance}
}

// Classifiers returns the rule chain with the configured arithmetic band.
func (c *Config) Classifiers() []diagnosis.Classifier {
	return diagnosis.ClassifiersWithBand(c.Grading.ArithmeticBand)
}

func splitOrigins(v string) []string {
	var origins []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			origins = append(origins, part)
		}
	}
	return origins
}
