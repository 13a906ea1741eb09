// Package handler implements the HTTP handlers for the guarddiv API.
// All handlers are methods on Server. Methods are split into files by
// concern (health.go, divide.go) but share the same Server struct.
package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/guarddiv/internal/domain"
	"github.com/pkordes/guarddiv/spec"
)

// Divider defines the business operation the divide handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a fake without touching the service layer.
type Divider interface {
	Evaluate(ctx context.Context, w io.Writer, ops domain.Operands) (domain.Outcome, error)
}

// Server serves every API endpoint.
type Server struct {
	divider Divider
}

// NewServer constructs the Server with all its dependencies.
func NewServer(divider Divider) *Server {
	return &Server{divider: divider}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil)
}

// Routes returns a chi router with every endpoint mounted.
// Middleware is applied by the caller so tests can exercise handlers bare.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)
	if s.divider != nil {
		r.Get("/divide", s.DivideQuery)
		r.Post("/divide", s.DivideBody)
	}
	return r
}

// GetOpenAPI handles GET /openapi.yaml.
func (s *Server) GetOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(spec.OpenAPI)
}
