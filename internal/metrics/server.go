package metrics

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"

	"go.uber.org/zap"
)

// Server exposes /metrics for scraping while the TUI runs.
type Server struct {
	server *http.Server
	logger *zap.Logger

	mu   sync.Mutex
	addr string
}

// NewServer creates a server for addr (e.g. ":9464").
func NewServer(m *Metrics, addr string, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	return &Server{
		server: &http.Server{Addr: addr, Handler: mux},
		logger: logger,
		addr:   addr,
	}
}

// Start binds the listener and serves in a background goroutine.
// Bind errors are returned; serve errors are logged.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.addr = ln.Addr().String()
	s.mu.Unlock()
	go func() {
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("metrics server stopped", zap.Error(err))
		}
	}()
	s.logger.Info("metrics server listening", zap.String("addr", s.Addr()))
	return nil
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Addr returns the bound address once started, or the configured one.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}
