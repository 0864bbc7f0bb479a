// Package server implements the HTTP JSON API the browser front end talks
// to, plus the static entry page.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"compliance-tracker/internal/api"
	"compliance-tracker/internal/config"
)

// Server is the task tracker HTTP server.
type Server struct {
	cfg      config.ServerConfig
	mux      *http.ServeMux
	httpSrv  *http.Server
	logger   *slog.Logger
	handlers *Handlers
}

// New creates a new Server serving the given API.
func New(cfg config.ServerConfig, apiInstance api.API, requestTimeout time.Duration, logger *slog.Logger) *Server {
	s := &Server{
		cfg:    cfg,
		mux:    http.NewServeMux(),
		logger: logger,
	}
	s.handlers = &Handlers{
		API:     apiInstance,
		Logger:  logger,
		Timeout: requestTimeout,
	}
	s.registerRoutes()
	return s
}

// registerRoutes sets up all HTTP routes.
func (s *Server) registerRoutes() {
	s.handlers.RegisterRoutes(s.mux)

	// The entry page and its assets; the front end is an external caller of
	// the API above, nothing server-side renders it.
	if s.cfg.StaticDir != "" {
		s.mux.Handle("GET /", http.FileServer(http.Dir(s.cfg.StaticDir)))
	}
}

// Handler returns the server's handler with middleware applied. Exposed for
// tests as well as Start.
func (s *Server) Handler() http.Handler {
	return requestLogger(s.logger, corsHandler(s.mux))
}

// Start begins listening on the configured address. It blocks until the
// listener stops.
func (s *Server) Start() error {
	s.httpSrv = &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 15 * time.Second,
	}
	s.logger.Info("server listening", slog.String("addr", s.cfg.Addr))
	return s.httpSrv.ListenAndServe()
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}
