package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mykeomos/Newton-law-tutor/internal/config"
	"github.com/mykeomos/Newton-law-tutor/internal/diagnosis"
	"github.com/mykeomos/Newton-law-tutor/internal/hints"
	"github.com/mykeomos/Newton-law-tutor/internal/httpapi"
	"github.com/mykeomos/Newton-law-tutor/internal/kb"
	"github.com/mykeomos/Newton-law-tutor/internal/llm"
	"github.com/mykeomos/Newton-law-tutor/internal/metric"
	"github.com/mykeomos/Newton-law-tutor/internal/ontology"
	"github.com/mykeomos/Newton-law-tutor/internal/problemgen"
	"github.com/mykeomos/Newton-law-tutor/internal/tutor"
	"github.com/mykeomos/Newton-law-tutor/internal/units"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the practice HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides config)")
	serveCmd.Flags().String("ontology", "", "Ontology file in Turtle or RDF/XML (overrides config)")
	serveCmd.Flags().String("kb", "", "SQLite knowledge base path (overrides config)")
	serveCmd.Flags().String("web", "", "Directory with the static practice page (overrides config)")
	serveCmd.Flags().Bool("llm-hints", false, "Rewrite the hint table once at startup using the LLM provider")
}

// runServe builds every dependency the HTTP API needs and blocks until the
// process receives SIGINT or SIGTERM. It is shared by the serve subcommand
// and the bare root command.
func runServe(cmd *cobra.Command) error {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := loadServeConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics := metric.New()

	graph, source := loadOntologyGraph(cfg.Ontology.Path, logger)
	ontProvider := ontology.NewProvider(graph)
	sum := ontProvider.Summarize()
	metrics.SetOntologySize(sum.Triples, sum.Individuals, sum.Hints)
	logger.Info("ontology ready", "source", source, "triples", sum.Triples, "hints", sum.Hints)

	// Hint providers are consulted in order: operator overrides from the
	// knowledge base win, then LLM-enriched hints, then the ontology. The
	// selector falls back to its built-in table when all of them miss.
	var providers []hints.Provider

	if cfg.KB.Path != "" {
		base, err := kb.Open(cfg.KB.Path)
		if err != nil {
			return fmt.Errorf("open knowledge base: %w", err)
		}
		defer base.Close()

		table, err := base.LoadHints(ctx)
		if err != nil {
			return fmt.Errorf("load knowledge base hints: %w", err)
		}
		if table.Len() > 0 {
			providers = append(providers, table)
		}

		aliases, err := base.LoadUnitAliases(ctx)
		if err != nil {
			return fmt.Errorf("load unit aliases: %w", err)
		}
		for _, u := range aliases {
			if err := units.Register(u); err != nil {
				logger.Warn("skipping unit alias", "symbol", u.Symbol, "error", err)
			}
		}
		logger.Info("knowledge base loaded", "path", cfg.KB.Path, "hints", table.Len(), "aliases", len(aliases))
	}

	provider, err := llm.NewProviderFromEnv(ctx, logger)
	if err != nil {
		return fmt.Errorf("configure LLM provider: %w", err)
	}
	if provider == nil {
		logger.Info("no LLM provider configured, running with local generation and rule-based diagnosis only")
	}

	var generator problemgen.Generator = problemgen.NewLocalGenerator()
	if provider != nil {
		generator = problemgen.WithFallback(problemgen.New(provider, problemgen.DefaultConfig()), generator, logger)

		if cfg.Hints.LLM {
			enriched, err := hints.Enrich(ctx, provider, hints.DefaultEnrichConfig())
			if err != nil {
				logger.Warn("hint enrichment failed, keeping static hints", "error", err)
			} else {
				providers = append(providers, enriched)
			}
		}
	}

	providers = append(providers, ontProvider)
	selector := hints.NewSelector(providers...)

	diagSvc := diagnosis.NewService(provider, cfg.Classifiers()...)
	defer diagSvc.Close()

	server := httpapi.New(cfg, httpapi.Deps{
		Tutor:    tutor.NewService(diagSvc, selector, cfg.Tolerance()),
		Problems: generator,
		Hints:    selector,
		Ontology: ontProvider,
		Metrics:  metrics,
		Logger:   logger,
		Version:  version,
	})
	return server.Run(ctx)
}

// loadServeConfig reads the config file named by the persistent --config
// flag and layers any serve flags the user set on top of it.
func loadServeConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if v, _ := cmd.Flags().GetString("addr"); v != "" {
		cfg.Server.Addr = v
	}
	if v, _ := cmd.Flags().GetString("ontology"); v != "" {
		cfg.Ontology.Path = v
	}
	if v, _ := cmd.Flags().GetString("kb"); v != "" {
		cfg.KB.Path = v
	}
	if v, _ := cmd.Flags().GetString("web"); v != "" {
		cfg.Web.Dir = v
	}
	if ok, _ := cmd.Flags().GetBool("llm-hints"); ok {
		cfg.Hints.LLM = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadOntologyGraph resolves the ontology in order: the configured path,
// then well-known files in the working directory, then the embedded copy.
// A configured path that fails to parse degrades to the embedded copy so
// the server still starts.
func loadOntologyGraph(path string, logger *slog.Logger) (*ontology.Graph, string) {
	if path != "" {
		g, err := ontology.LoadFile(path)
		if err == nil {
			return g, path
		}
		logger.Warn("ontology load failed, using embedded copy", "path", path, "error", err)
		return ontology.Embedded(), "embedded"
	}
	if g, found, err := ontology.Discover("."); err == nil {
		return g, found
	}
	return ontology.Embedded(), "embedded"
}
