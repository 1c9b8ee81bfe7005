// Package web provides the HTTP server and JSON handlers for the site.
package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/evcraddock/agent-site/internal/contact"
	"github.com/evcraddock/agent-site/internal/listing"
	"github.com/evcraddock/agent-site/internal/logging"
)

const shutdownTimeout = 5 * time.Second

// Server is the site HTTP server.
type Server struct {
	catalog *listing.Catalog
	contact *contact.Service
	baseURL string
	started time.Time
	mux     *http.ServeMux
}

// NewServer creates a server over an immutable catalog and a contact
// service. baseURL is used for absolute sitemap links.
func NewServer(catalog *listing.Catalog, svc *contact.Service, baseURL string) *Server {
	s := &Server{
		catalog: catalog,
		contact: svc,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		started: time.Now().UTC(),
		mux:     http.NewServeMux(),
	}

	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/api/listings", s.handleAPIListings)
	s.mux.HandleFunc("/api/listings/", s.handleAPIListings)
	s.mux.HandleFunc("/api/contact", s.handleAPIContact)
	s.mux.HandleFunc("/api/neighborhoods", s.handleAPINeighborhoods)
	s.mux.HandleFunc("/api/neighborhoods/", s.handleAPINeighborhoods)
	s.mux.HandleFunc("/api/testimonials", s.handleAPITestimonials)
	s.mux.HandleFunc("/api/stats", s.handleAPIStats)
	s.mux.HandleFunc("/api/intro", s.handleAPIIntro)
	s.mux.HandleFunc("/api/intro/seen", s.handleAPIIntroSeen)
	s.mux.HandleFunc("/sitemap.xml", s.handleSitemap)

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// Handler returns the server wrapped in request logging.
func (s *Server) Handler() http.Handler {
	return logging.RequestLogger(s)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("server starting", "addr", ln.Addr().String(), "contact_method", s.contact.Method())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		slog.Info("server shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	apiJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
