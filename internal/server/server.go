// Package server exposes maze generation over HTTP.
//
// # Endpoints
//
//	GET /healthz               liveness check, answers "ok"
//	GET /v1/strategies         JSON list of carve strategy names
//	GET /v1/maze               generate and render one maze
//	GET /v1/maze/stream        websocket replay of a maze's visitation order
//
// /v1/maze and /v1/maze/stream accept the query parameters height, width,
// strategy, seed, min_cycle, steps and start. /v1/maze also takes format
// (json by default), cell, animate, detailed and order; the stream takes
// delay, a Go duration between cell messages.
//
// Errors are returned as {"code": ..., "message": ...} with status 400 for
// invalid input and 500 otherwise.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/mazegen/pkg/maze/carve"
	"github.com/matzehuels/mazegen/pkg/pipeline"
)

const (
	// DefaultTimeout bounds a single /v1/maze request.
	DefaultTimeout = 30 * time.Second

	// MaxStreamDelay caps the delay parameter of the stream endpoint.
	MaxStreamDelay = time.Second

	shutdownTimeout = 5 * time.Second
)

// Server serves the HTTP API. Create one with [New].
type Server struct {
	logger  *log.Logger
	runner  *pipeline.Runner
	timeout time.Duration
}

// Option configures a Server.
type Option func(*Server)

// WithTimeout sets the per-request timeout of /v1/maze.
func WithTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// New returns a server logging to logger.
func New(logger *log.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		logger:  logger,
		runner:  pipeline.NewRunner(logger),
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the routed API.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/strategies", s.handleStrategies)
		r.With(middleware.Timeout(s.timeout)).Get("/maze", s.handleMaze)
		r.Get("/maze/stream", s.handleStream)
	})
	return r
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleStrategies(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, carve.Names())
}
