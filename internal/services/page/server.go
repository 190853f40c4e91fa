package page

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/louisbranch/uctf/internal/platform/timeouts"
	"golang.org/x/text/language"
)

// Config defines startup inputs for the page host.
type Config struct {
	HTTPAddr string
	Title    string
	Lang     string
}

// Server hosts the page component over HTTP.
type Server struct {
	httpAddr   string
	app        *App
	httpServer *http.Server
}

// NewServer validates config, mounts a fresh component and builds the server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	tag, err := language.Parse(strings.TrimSpace(cfg.Lang))
	if err != nil {
		return nil, fmt.Errorf("parse page language %q: %w", cfg.Lang, err)
	}
	app := Mount(New())
	handler := NewHandler(HandlerConfig{Title: cfg.Title, Lang: tag.String()}, app)
	return &Server{
		httpAddr: httpAddr,
		app:      app,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// App returns the mounted component.
func (s *Server) App() *App {
	if s == nil {
		return nil
	}
	return s.app
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("page server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown page http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve page http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
