// Package server provides the thin HTTP API around the grading engine.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gabrielsuarezz/Voxtant/internal/ai"
	"github.com/gabrielsuarezz/Voxtant/internal/interview"
	"go.uber.org/zap"
)

const (
	defaultPort     = 8000
	shutdownTimeout = 10 * time.Second
)

// Config holds server configuration.
type Config struct {
	Port int
	// AllowedOrigins is the CORS allow-list. Defaults to the local web app.
	AllowedOrigins []string
}

// Deps aggregates the collaborators the handlers need. Extractor and Planner
// may be nil; the handlers then serve deterministic fallbacks.
type Deps struct {
	Logger    *zap.Logger
	Grader    *interview.Grader
	Extractor ai.Extractor
	Planner   ai.Planner
}

// Server is the HTTP front of the grading engine.
type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
	grader     *interview.Grader
	extractor  ai.Extractor
	planner    ai.Planner
	origins    map[string]struct{}
}

// New builds the server and its routes.
func New(cfg Config, deps Deps) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	port := cfg.Port
	if port <= 0 {
		port = defaultPort
	}

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}

	s := &Server{
		logger:    logger,
		grader:    deps.Grader,
		extractor: deps.Extractor,
		planner:   deps.Planner,
		origins:   make(map[string]struct{}, len(origins)),
	}
	for _, origin := range origins {
		if origin = strings.TrimSpace(origin); origin != "" {
			s.origins[origin] = struct{}{}
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("POST /v1/extract_requirements", s.handleExtractRequirements)
	mux.HandleFunc("POST /v1/generate_plan", s.handleGeneratePlan)
	mux.HandleFunc("POST /v1/grade", s.handleGrade)

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.withCORS(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// Handler exposes the configured handler chain, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run serves until the context is canceled or a SIGINT/SIGTERM arrives, then
// shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return <-errCh
}

// withCORS applies the configured origin allow-list and answers preflight
// requests before they reach the mux.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			if _, ok := s.origins[origin]; ok {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
				w.Header().Set("Vary", "Origin")
			}
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
