// Package server exposes the observability HTTP endpoint: Prometheus
// metrics, a health check, and the security headers both are served
// behind. The server is optional and only started when a listen address
// is configured.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agbru/bignum/internal/logging"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Server serves /metrics and /healthz on a dedicated listener.
type Server struct {
	addr     string
	logger   logging.Logger
	gatherer prometheus.Gatherer
	security SecurityConfig

	httpServer *http.Server
}

// New creates a Server for the given listen address. The gatherer
// backs the /metrics endpoint.
func New(addr string, gatherer prometheus.Gatherer, logger logging.Logger) *Server {
	return &Server{
		addr:     addr,
		logger:   logger,
		gatherer: gatherer,
		security: DefaultSecurityConfig(),
	}
}

// Handler builds the full route table with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	metricsHandler := promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})
	mux.Handle("/metrics", SecurityMiddleware(s.security, metricsHandler.ServeHTTP))
	mux.Handle("/healthz", SecurityMiddleware(s.security, s.handleHealth))

	return mux
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// Run starts the listener and blocks until ctx is canceled or the
// listener fails. Shutdown is graceful within shutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("metrics server listening", logging.String("addr", s.addr))
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("metrics server shutdown failed", err)
			return err
		}
		s.logger.Info("metrics server stopped")
		return nil
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	}
}
