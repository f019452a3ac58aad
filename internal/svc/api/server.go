// If you are AI: This file provides the root and status API service integration.
// The API advertises the route table and reports process status.

package api

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"testapi/internal/config"
	"testapi/internal/svc/routes"
)

// Service provides the root and status endpoints.
type Service struct {
	meta      config.ServiceConfig
	logger    *zap.Logger
	startTime time.Time
	now       func() time.Time
}

// NewService creates a new API service. Uptime is measured from this call.
func NewService(meta config.ServiceConfig, logger *zap.Logger) *Service {
	return &Service{
		meta:      meta,
		logger:    logger,
		startTime: getCurrentTime(),
		now:       getCurrentTime,
	}
}

// RegisterRoutes registers / and /status on the provided mux.
// wrap is applied to each handler, typically for request counting.
func (s *Service) RegisterRoutes(mux *http.ServeMux, wrap func(http.Handler) http.Handler) {
	mux.Handle(routes.Pattern(routes.Root), wrap(http.HandlerFunc(s.handleRoot)))
	mux.Handle(routes.Pattern(routes.Status), wrap(http.HandlerFunc(s.handleStatus)))
}

// getCurrentTime returns the current wall clock time.
// Extracted for testability.
func getCurrentTime() time.Time {
	return time.Now()
}
