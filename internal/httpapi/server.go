// SPDX-License-Identifier: MIT

// Package httpapi serves the calculator engine as a JSON API.
package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/katalvlaran/lincalc/calc"
	"github.com/katalvlaran/lincalc/internal/config"
	"github.com/katalvlaran/lincalc/internal/metrics"
)

// Server is the lincalc HTTP server. Requests are independent; the server
// holds no per-request state.
type Server struct {
	router  *mux.Router
	server  *http.Server
	engine  *calc.Engine
	metrics *metrics.Registry
	limiter *rate.Limiter
	log     zerolog.Logger
	config  config.ServerConfig
	version string
}

// Option customizes a Server.
type Option func(*Server)

// WithMetrics records HTTP metrics into reg and serves it on /metrics.
func WithMetrics(reg *metrics.Registry) Option { return func(s *Server) { s.metrics = reg } }

// WithLogger sets the request logger (default zerolog.Nop()).
func WithLogger(l zerolog.Logger) Option { return func(s *Server) { s.log = l } }

// WithVersion sets the version reported by /api/health.
func WithVersion(v string) Option { return func(s *Server) { s.version = v } }

// NewServer wires routes and middleware around engine.
func NewServer(cfg config.ServerConfig, engine *calc.Engine, opts ...Option) *Server {
	s := &Server{
		router:  mux.NewRouter(),
		engine:  engine,
		log:     zerolog.Nop(),
		config:  cfg,
		version: "dev",
	}
	for _, o := range opts {
		o(s)
	}
	if cfg.RateLimit.RPS > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst)
	}
	s.setupRoutes()
	s.server = &http.Server{
		Addr:         cfg.Addr(),
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(s.requestIDMiddleware)
	s.router.Use(s.requestLoggingMiddleware)
	s.router.Use(s.corsMiddleware)
	s.router.Use(s.rateLimitMiddleware)
	s.router.Use(s.timeoutMiddleware)

	api := s.router.PathPrefix("/api").Subrouter()
	api.Use(s.jsonContentTypeMiddleware)
	api.HandleFunc("/health", s.health).Methods(http.MethodGet, http.MethodOptions)

	v1 := api.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/matrix/calculate", s.calculate).Methods(http.MethodPost, http.MethodOptions)
	v1.HandleFunc("/matrix/analyze", s.analyze).Methods(http.MethodPost, http.MethodOptions)
	v1.HandleFunc("/vectors/cross", s.cross).Methods(http.MethodPost, http.MethodOptions)
	v1.HandleFunc("/equations/solve", s.solve).Methods(http.MethodPost, http.MethodOptions)
	v1.HandleFunc("/coordinates/convert", s.convert).Methods(http.MethodPost, http.MethodOptions)

	if s.metrics != nil {
		s.router.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet)
	}

	s.router.NotFoundHandler = s.wrapUnmatched(http.HandlerFunc(s.notFound))
	s.router.MethodNotAllowedHandler = s.wrapUnmatched(http.HandlerFunc(s.methodNotAllowed))
}

// wrapUnmatched applies the middleware mux skips for unmatched requests.
func (s *Server) wrapUnmatched(h http.Handler) http.Handler {
	return s.requestIDMiddleware(s.requestLoggingMiddleware(s.jsonContentTypeMiddleware(h)))
}

// Handler returns the routed handler, e.g. for httptest.
func (s *Server) Handler() http.Handler { return s.router }

// Addr returns the listen address.
func (s *Server) Addr() string { return s.server.Addr }

// Start listens until Shutdown; http.ErrServerClosed is not an error.
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.server.Addr).Str("version", s.version).Msg("starting HTTP server")
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// Shutdown gracefully drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("shutting down HTTP server")
	return s.server.Shutdown(ctx)
}
