package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"github.com/highrascal9098/Interview-Prep/internal/logging"
	"github.com/highrascal9098/Interview-Prep/internal/orchestrator"
	"github.com/highrascal9098/Interview-Prep/internal/topic"
)

// Config holds server configuration.
type Config struct {
	Port         int
	Title        string
	DefaultCount int
	AllowAll     bool // allow all CORS origins (dev mode)
}

// Server serves the quiz page and regenerates questions on demand.
type Server struct {
	cfg        Config
	registry   *topic.Registry
	loader     orchestrator.TopicLoader
	logger     *logrus.Logger
	router     chi.Router
	httpServer *http.Server
}

// New creates a server. Every page load and regeneration runs its own
// orchestrated pass against a fresh document.
func New(cfg Config, registry *topic.Registry, l orchestrator.TopicLoader, logger *logrus.Logger) *Server {
	if logger == nil {
		logger = logging.Discard()
	}
	s := &Server{
		cfg:      cfg,
		registry: registry,
		loader:   l,
		logger:   logger,
	}

	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))
		r.Get("/", s.handlePage)
		r.Get("/api/regenerate", s.handleRegenerate)
		r.Get("/static/{name}", s.handleStatic)
	})

	// The websocket outlives a request timeout.
	r.Get("/ws/regenerate", s.handleStream)

	return r
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

// ServerConfig returns the server configuration.
func (s *Server) ServerConfig() Config { return s.cfg }

// orchestrator builds a pass runner with per-pass options layered on the
// server's loader and logger.
func (s *Server) orchestrator(opts ...orchestrator.Option) *orchestrator.Orchestrator {
	opts = append([]orchestrator.Option{orchestrator.WithLogger(s.logger)}, opts...)
	return orchestrator.New(s.registry, s.loader, opts...)
}

// parseCount reads a questions-per-topic value; empty means def.
func parseCount(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid count %q: must be a whole number", raw)
	}
	if n < 0 {
		return 0, fmt.Errorf("invalid count %d: must be non-negative", n)
	}
	return n, nil
}

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.logger.WithField("addr", addr).Info("quiz server listening")
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
