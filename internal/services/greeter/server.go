package greeter

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/louisbranch/uctf/internal/platform/timeouts"
)

// Server owns the listening socket and the HTTP server serving the router.
type Server struct {
	opts       Options
	httpServer *http.Server

	mu       sync.Mutex
	listener net.Listener
}

// NewServer validates options and constructs a responder server.
func NewServer(opts Options, handler http.Handler) (*Server, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if handler == nil {
		return nil, errors.New("handler is required")
	}
	return &Server{
		opts: opts,
		httpServer: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// Listen binds the listening socket. A bind failure is returned as is;
// there is no retry and no fallback port.
func (s *Server) Listen(ctx context.Context) error {
	if s == nil {
		return errors.New("greeter server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return errors.New("greeter server is already listening")
	}
	var lc net.ListenConfig
	listener, err := lc.Listen(ctx, "tcp", s.opts.Addr())
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.opts.Addr(), err)
	}
	s.listener = listener
	return nil
}

// Addr returns the bound address, or nil before Listen succeeds.
func (s *Server) Addr() net.Addr {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Serve handles connections on the bound socket until ctx is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("greeter server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}
	s.mu.Lock()
	listener := s.listener
	s.mu.Unlock()
	if listener == nil {
		return errors.New("greeter server is not listening")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown greeter http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve greeter http: %w", err)
	}
}

// ListenAndServe binds and then serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if err := s.Listen(ctx); err != nil {
		return err
	}
	return s.Serve(ctx)
}

// Close releases the socket and any open connections.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		_ = s.listener.Close()
	}
}
