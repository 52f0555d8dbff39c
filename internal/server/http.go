package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"ghnotifs/internal/logging"
)

// RenderFunc performs one fetch-and-render pass and returns the dashboard
// page for the request.
type RenderFunc func(ctx context.Context) (string, error)

// HTTPServer serves the HTML dashboard. Every request triggers a fresh
// fetch; the page's own reload timer drives the refresh cadence.
type HTTPServer struct {
	addr   string
	render RenderFunc
}

// NewHTTPServer creates the dashboard server.
func NewHTTPServer(addr string, render RenderFunc) *HTTPServer {
	return &HTTPServer{addr: addr, render: render}
}

// Start runs the server and blocks until an interrupt or termination
// signal, then shuts down gracefully.
func (s *HTTPServer) Start() error {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		page, err := s.render(r.Context())
		if err != nil {
			logging.Logger.Error("Dashboard render failed", "error", err)
			http.Error(w, fmt.Sprintf("fetch failed: %v", err), http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, page)
	})

	srv := &http.Server{
		Addr:    s.addr,
		Handler: router,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logging.Logger.Info("Starting HTTP server", "address", s.addr)
	fmt.Printf("Dashboard listening on http://%s\n", s.addr)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case <-done:
	}

	logging.Logger.Info("Shutting down HTTP server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	logging.Logger.Info("HTTP server stopped")
	return nil
}
