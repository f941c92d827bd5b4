// Package httpapi exposes the layout engine over HTTP.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/rackplan/pkg/config"
	"github.com/matzehuels/rackplan/pkg/layout"
)

// =============================================================================
// Constants
// =============================================================================

const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 15 * time.Second
	writeTimeout      = 30 * time.Second
	idleTimeout       = 60 * time.Second

	// shutdownGrace bounds how long in-flight requests may run after the
	// server is asked to stop.
	shutdownGrace = 5 * time.Second
)

// =============================================================================
// Server
// =============================================================================

// Server serves layout calculations over HTTP.
type Server struct {
	cfg    config.Config
	calc   *layout.Calculator
	logger *log.Logger
}

// NewServer builds a server around a calculator for the given settings.
func NewServer(cfg config.Config, logger *log.Logger) (*Server, error) {
	calc, err := layout.NewCalculator(cfg)
	if err != nil {
		return nil, err
	}
	return &Server{cfg: cfg, calc: calc, logger: logger}, nil
}

// Router returns the HTTP handler with all routes and middleware attached.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestID, s.logRequests, s.recoverPanics)

	r.Post("/v1/layout", s.handleLayout)
	r.Get("/v1/config", s.handleConfig)
	r.Get("/healthz", s.handleHealthz)
	r.Get("/debug/chart", s.handleDebugChart)
	return r
}

// ListenAndServe runs the server until the context is canceled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down", "grace", shutdownGrace)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
