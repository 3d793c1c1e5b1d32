// Package http provides the HTTP transport for the extraction service.
package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/paperext/paperext"
	"github.com/paperext/paperext/bloom"
)

// ShutdownTimeout is how long Close waits for in-flight requests.
const ShutdownTimeout = 5 * time.Second

// Server wires the extraction pipeline and paper storage to an HTTP API.
//
// Routes:
//
//	POST   /papers       upload a PDF and extract its text
//	GET    /papers       list stored extractions
//	GET    /papers/{id}  fetch one stored extraction
//	DELETE /papers/{id}  delete a stored extraction
type Server struct {
	ln     net.Listener
	server *http.Server
	router chi.Router

	Addr string

	Converter paperext.Converter
	Trimmer   paperext.PageTrimmer
	Files     paperext.FileStore
	Papers    paperext.PaperService
	Seen      *bloom.Filter

	// Pages is the number of leading pages kept before conversion.
	Pages int

	Logger *slog.Logger
}

// NewServer returns a Server with routes registered. Dependencies must be
// set before Open.
func NewServer() *Server {
	s := &Server{
		router: chi.NewRouter(),
		Logger: slog.Default(),
	}
	s.server = &http.Server{Handler: s.router}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Recoverer)

	s.router.Route("/papers", func(r chi.Router) {
		r.Post("/", s.handlePaperUpload)
		r.Get("/", s.handlePaperList)
		r.Get("/{id}", s.handlePaperShow)
		r.Delete("/{id}", s.handlePaperDelete)
	})

	return s
}

// Open starts listening on Addr. It does not block.
func (s *Server) Open() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	s.ln = ln

	go func() {
		if err := s.server.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.Logger.Error("http server terminated", "error", err)
		}
	}()

	return nil
}

// Close gracefully shuts the server down.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// URL returns the base URL of the running server, for tests.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

// ServeHTTP makes the server usable as a handler directly.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// respondJSON writes v as a JSON response with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes an application error as a JSON response, logging internal
// errors with their request ID.
func (s *Server) Error(w http.ResponseWriter, r *http.Request, err error) {
	code := paperext.ErrorCode(err)
	status := errorStatus(code)
	if status == http.StatusInternalServerError {
		s.Logger.Error("request failed",
			"requestID", middleware.GetReqID(r.Context()),
			"path", r.URL.Path,
			"error", err,
		)
	}
	respondJSON(w, status, map[string]string{"error": paperext.ErrorMessage(err)})
}

func errorStatus(code string) int {
	switch code {
	case paperext.EINVALID, paperext.EINVALIDFORMAT:
		return http.StatusBadRequest
	case paperext.ENOTFOUND:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
