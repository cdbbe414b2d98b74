// Package httpapi exposes the tutor pipeline over HTTP: solve grading,
// problem generation, the unit and hint tables, health and metrics.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mykeomos/Newton-law-tutor/internal/answer"
	"github.com/mykeomos/Newton-law-tutor/internal/config"
	"github.com/mykeomos/Newton-law-tutor/internal/hints"
	"github.com/mykeomos/Newton-law-tutor/internal/metric"
	"github.com/mykeomos/Newton-law-tutor/internal/ontology"
	"github.com/mykeomos/Newton-law-tutor/internal/problemgen"
	"github.com/mykeomos/Newton-law-tutor/internal/tutor"
)

// Deps carries the wired services the API serves. Nil fields fall back to
// local defaults so tests and minimal setups stay short.
type Deps struct {
	Tutor    *tutor.Service
	Problems problemgen.Generator
	Hints    *hints.Selector
	Ontology *ontology.Provider // optional; enriches /healthz
	Metrics  *metric.Metrics
	Logger   *slog.Logger
	Version  string
}

// Server is the HTTP front end.
type Server struct {
	cfg      *config.Config
	tutor    *tutor.Service
	problems problemgen.Generator
	hints    *hints.Selector
	metrics  *metric.Metrics
	log      *slog.Logger
	version  string
	ontology *ontology.Summary
	engine   *gin.Engine
	started  time.Time
}

// New builds the server and its routes.
func New(cfg *config.Config, deps Deps) *Server {
	if cfg == nil {
		cfg = config.Default()
	}
	if deps.Tutor == nil {
		deps.Tutor = tutor.NewService(nil, nil, answer.Tolerance{})
	}
	if deps.Problems == nil {
		deps.Problems = problemgen.NewLocalGenerator()
	}
	if deps.Hints == nil {
		deps.Hints = hints.NewSelector()
	}
	if deps.Metrics == nil {
		deps.Metrics = metric.New()
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	s := &Server{
		cfg:      cfg,
		tutor:    deps.Tutor,
		problems: deps.Problems,
		hints:    deps.Hints,
		metrics:  deps.Metrics,
		log:      deps.Logger,
		version:  deps.Version,
		started:  time.Now(),
	}
	if deps.Ontology != nil {
		// The graph is immutable after startup, so the summary is too.
		sum := deps.Ontology.Summarize()
		s.ontology = &sum
	}

	s.engine = s.buildEngine()
	return s
}

// Router returns the underlying engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.engine
}

func (s *Server) buildEngine() *gin.Engine {
	if os.Getenv(gin.EnvGinMode) == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	e := gin.New()
	e.Use(gin.Recovery())
	e.Use(requestID())
	e.Use(accessLog(s.log))
	e.Use(observe(s.metrics))

	if origins := s.cfg.Server.CORSOrigins; len(origins) > 0 {
		cc := cors.Config{
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "X-Request-ID"},
			MaxAge:       12 * time.Hour,
		}
		if containsWildcard(origins) {
			cc.AllowAllOrigins = true
		} else {
			cc.AllowOrigins = origins
		}
		e.Use(cors.New(cc))
	}

	api := e.Group("/api")
	api.POST("/solve", s.handleSolve)
	api.GET("/problem", s.handleProblem)
	api.GET("/units", s.handleUnits)
	api.GET("/hints", s.handleHints)

	e.GET("/healthz", s.handleHealthz)
	e.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.metrics.Registry(), promhttp.HandlerOpts{})))

	s.mountStatic(e)
	return e
}

// mountStatic serves the practice page when the web dir exists. The catch-all
// stays off /api so wrong API paths still get a JSON 404.
func (s *Server) mountStatic(e *gin.Engine) {
	dir := s.cfg.Web.Dir
	if dir == "" {
		return
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return
	}

	e.StaticFile("/", filepath.Join(dir, "index.html"))
	e.NoRoute(func(c *gin.Context) {
		if c.Request.Method == http.MethodGet && !strings.HasPrefix(c.Request.URL.Path, "/api/") {
			// Clean with a leading slash so ".." cannot escape the web dir.
			rel := filepath.Clean("/" + c.Request.URL.Path)
			c.File(filepath.Join(dir, rel))
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "NotFound", "message": "no such route"})
	})
}

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.log.Info("server listening", "addr", srv.Addr)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.log.Info("server stopped")
	return nil
}

func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
