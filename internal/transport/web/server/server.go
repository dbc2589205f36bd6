package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/crypto/acme/autocert"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	TLSDisabled       bool
	TLSDisabledPort   int
	AutocertHostnames []string
	Router            http.Handler
}

// Run serves HTTP until ctx is cancelled, then drains in-flight requests
// before returning.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Handler: s.Router}

	serveErr := make(chan error, 1)
	go func() {
		if s.TLSDisabled {
			srv.Addr = fmt.Sprintf(":%d", s.TLSDisabledPort)
			serveErr <- srv.ListenAndServe()
			return
		}
		serveErr <- srv.Serve(autocert.NewListener(s.AutocertHostnames...))
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down HTTP server: %w", err)
	}

	if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return ctx.Err()
}
