// If you are AI: This file implements the health check endpoints for monitoring and integration tests.

package health

import (
	"net/http"

	"go.uber.org/zap"

	"testapi/internal/config"
	"testapi/internal/svc/respond"
	"testapi/internal/svc/routes"
)

// StatusHealthy is the only status reported; the service has no degraded mode.
const StatusHealthy = "healthy"

// Response represents the /health response.
type Response struct {
	Status      string `json:"status"`
	Service     string `json:"service"`
	Version     string `json:"version"`
	Environment string `json:"environment,omitempty"`
}

// V1Response represents the /api/v1/health response.
type V1Response struct {
	APIVersion string `json:"api_version"`
	Status     string `json:"status"`
	Service    string `json:"service"`
}

// Service provides health check functionality.
type Service struct {
	meta   config.ServiceConfig
	logger *zap.Logger
}

// New creates a new health service instance.
func New(meta config.ServiceConfig, logger *zap.Logger) *Service {
	return &Service{meta: meta, logger: logger}
}

// RegisterRoutes adds /health and /api/v1/health to the provided mux.
// wrap is applied to each handler, typically for request counting.
func (s *Service) RegisterRoutes(mux *http.ServeMux, wrap func(http.Handler) http.Handler) {
	mux.Handle(routes.Pattern(routes.Health), wrap(http.HandlerFunc(s.handleHealth)))
	mux.Handle(routes.Pattern(routes.HealthV1), wrap(http.HandlerFunc(s.handleHealthV1)))
}

// handleHealth responds to GET /health.
// Returns 200 OK to indicate the server is running.
func (s *Service) handleHealth(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, s.logger, http.StatusOK, Response{
		Status:      StatusHealthy,
		Service:     s.meta.Name,
		Version:     s.meta.Version,
		Environment: s.meta.Environment,
	})
}

// handleHealthV1 responds to GET /api/v1/health.
func (s *Service) handleHealthV1(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, s.logger, http.StatusOK, V1Response{
		APIVersion: "v1",
		Status:     StatusHealthy,
		Service:    s.meta.Name,
	})
}
