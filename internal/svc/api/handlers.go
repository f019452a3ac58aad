// If you are AI: This file implements HTTP API handlers.
// All handlers build fixed payloads and never fail for known paths.

package api

import (
	"net/http"
	"time"

	"testapi/internal/svc/respond"
	"testapi/internal/svc/routes"
)

// RootResponse represents the / response.
type RootResponse struct {
	Message   string   `json:"message"`
	Status    string   `json:"status"`
	Endpoints []string `json:"endpoints"`
}

// StatusResponse represents the /status response.
type StatusResponse struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime"` // Go duration string, whole seconds
	Service string `json:"service"`
}

// handleRoot handles GET /.
// Returns the service banner and the list of available endpoints.
func (s *Service) handleRoot(w http.ResponseWriter, r *http.Request) {
	response := RootResponse{
		Message:   s.meta.Title + " is running",
		Status:    "healthy",
		Endpoints: routes.All(),
	}

	respond.JSON(w, s.logger, http.StatusOK, response)
}

// handleStatus handles GET /status.
// Returns run state and uptime since the service was created.
func (s *Service) handleStatus(w http.ResponseWriter, r *http.Request) {
	uptime := s.now().Sub(s.startTime).Round(time.Second)
	if uptime < 0 {
		uptime = 0
	}

	response := StatusResponse{
		Status:  "running",
		Uptime:  uptime.String(),
		Service: s.meta.Name,
	}

	respond.JSON(w, s.logger, http.StatusOK, response)
}
