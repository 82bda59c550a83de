// Package web serves the conference site over HTTP: server-rendered pages,
// a JSON API over the same services, and the contact and registration
// form endpoints.
package web

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/klauspost/compress/gzhttp"

	"github.com/ictam/agmsite/internal/core/domain"
	"github.com/ictam/agmsite/internal/core/ports/driving"
	"github.com/ictam/agmsite/internal/logger"
)

// Metrics receives request and form observations.
type Metrics interface {
	ObserveRequest(route string, code int, d time.Duration)
	ObserveSubmission(form, outcome string)
	Handler() http.Handler
}

// Services bundles the driving ports the site is built on.
type Services struct {
	Search    driving.SearchService
	Directory driving.DirectoryService
	Programme driving.ProgrammeService
	Contact   driving.ContactService
}

// Server is the site's HTTP server.
type Server struct {
	services Services
	settings domain.SiteSettings
	pages    *pages
	limiter  *clientLimiter
	metrics  Metrics
	now      func() time.Time

	handler  http.Handler
	listener net.Listener
}

// NewServer builds the handler tree. metrics may be nil.
func NewServer(services Services, settings domain.SiteSettings, metrics Metrics) (*Server, error) {
	p, err := loadPages()
	if err != nil {
		return nil, err
	}

	s := &Server{
		services: services,
		settings: settings,
		pages:    p,
		limiter:  newClientLimiter(settings.Contact.Rate, settings.Contact.Burst),
		metrics:  metrics,
		now:      time.Now,
	}
	s.handler = s.routes()
	return s, nil
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("GET /speakers", s.handleSpeakers)
	mux.HandleFunc("GET /speakers/{slug}", s.handleSpeaker)
	mux.HandleFunc("GET /sponsors", s.handleSponsors)
	mux.HandleFunc("GET /sponsors/{id}", s.handleSponsor)
	mux.HandleFunc("GET /programme", s.handleProgramme)
	mux.HandleFunc("GET /search", s.handleSearchPage)

	mux.HandleFunc("GET /api/search", s.handleAPISearch)
	mux.HandleFunc("GET /api/speakers", s.handleAPISpeakers)
	mux.HandleFunc("GET /api/speakers/{slug}", s.handleAPISpeaker)
	mux.HandleFunc("GET /api/sponsors", s.handleAPISponsors)
	mux.HandleFunc("GET /api/sponsors/{id}", s.handleAPISponsor)
	mux.HandleFunc("GET /api/programme", s.handleAPIProgramme)

	mux.HandleFunc("POST /contact", s.handleContact)
	mux.HandleFunc("POST /register", s.handleRegister)

	mux.HandleFunc("GET /healthz", s.handleHealth)
	if s.metrics != nil {
		mux.Handle("GET /metrics", s.metrics.Handler())
	}
	mux.HandleFunc("/", s.handleNotFound)

	var h http.Handler = mux
	h = s.observe(h)
	if s.settings.Server.Gzip {
		h = gzhttp.GzipHandler(h)
	}
	return h
}

// statusRecorder captures the response code.
type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.code = code
	r.ResponseWriter.WriteHeader(code)
}

// observe logs and measures every request. The route label is the matched
// mux pattern so path parameters do not explode cardinality.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}

		next.ServeHTTP(rec, r)

		route := r.Pattern
		if route == "" || route == "/" {
			route = "unmatched"
		}
		elapsed := time.Since(start)
		logger.Debug("%s %s -> %d (%v)", r.Method, r.URL.RequestURI(), rec.code, elapsed)
		if s.metrics != nil {
			s.metrics.ObserveRequest(route, rec.code, elapsed)
		}
	})
}

// Listen binds addr. Call Serve afterwards; Addr reports the bound address.
func (s *Server) Listen(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	s.listener = ln
	return nil
}

// Addr returns the bound address, or "" before Listen.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Serve serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context) error {
	if s.listener == nil {
		if err := s.Listen(s.settings.Server.Addr); err != nil {
			return err
		}
	}

	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Serving on http://%s", s.Addr())
		if err := srv.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// clientKey identifies the caller for rate limiting.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
