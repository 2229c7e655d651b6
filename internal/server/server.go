// Package server exposes the playground's HTTP surface, which is a single health check.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/alexisbeaulieu97/cssplayground/internal/logger"
)

const (
	DefaultAddr            = ":5000"
	DefaultShutdownTimeout = 5 * time.Second
)

// Options configures a Server. Zero values fall back to the defaults.
type Options struct {
	Addr            string
	ShutdownTimeout time.Duration
	Logger          *logger.Logger
}

// Server serves the health check until its context is cancelled.
type Server struct {
	addr            string
	shutdownTimeout time.Duration
	log             *logger.Logger
	handler         http.Handler
}

// New builds a Server with its routes.
func New(opts Options) *Server {
	s := &Server{
		addr:            opts.Addr,
		shutdownTimeout: opts.ShutdownTimeout,
		log:             opts.Logger,
	}
	if s.addr == "" {
		s.addr = DefaultAddr
	}
	if s.shutdownTimeout <= 0 {
		s.shutdownTimeout = DefaultShutdownTimeout
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/healthcheck", healthcheck)
	s.handler = logRequests(s.log, mux)
	return s
}

// Handler returns the routed handler, request logging included.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then drains in-flight requests for at
// most the shutdown timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	s.log.WithFields(map[string]any{"addr": ln.Addr().String()}).Info("server listening")

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
	defer cancel()

	s.log.Info("shutting down server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

type healthResponse struct {
	Status string `json:"status"`
}

func healthcheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(healthResponse{Status: "ok"})
}
