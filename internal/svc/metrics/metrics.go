// If you are AI: This file implements the request counter and the Prometheus /metrics endpoint.
// The counter lives in a private registry so only test_api_requests_total is exposed.

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"testapi/internal/svc/routes"
)

// Metric identity as exposed to scrapers.
const (
	RequestsName = "test_api_requests_total"
	RequestsHelp = "Total requests"
)

// Service owns the request counter for the lifetime of the process.
// A new Service starts at zero; nothing is persisted.
type Service struct {
	registry *prometheus.Registry
	requests prometheus.Counter
	logger   *zap.Logger
}

// New creates a metrics service with a fresh registry and counter.
func New(logger *zap.Logger) *Service {
	requests := prometheus.NewCounter(prometheus.CounterOpts{
		Name: RequestsName,
		Help: RequestsHelp,
	})

	registry := prometheus.NewRegistry()
	registry.MustRegister(requests)

	return &Service{
		registry: registry,
		requests: requests,
		logger:   logger,
	}
}

// Instrument wraps a handler so every request it serves increments the counter.
// The increment happens before the handler runs, so the response reflects it.
func (s *Service) Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.requests.Inc()
		next.ServeHTTP(w, r)
	})
}

// RegisterRoutes adds /metrics to the provided mux.
// Scrapes are not instrumented and never move the counter.
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle(routes.Pattern(routes.Metrics), s.Handler())
}

// Handler returns the exposition handler for the private registry.
func (s *Service) Handler() http.Handler {
	return promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{
		ErrorLog:      zap.NewStdLog(s.logger),
		ErrorHandling: promhttp.ContinueOnError,
	})
}

// Registry exposes the underlying registry for in-process gathering.
func (s *Service) Registry() *prometheus.Registry {
	return s.registry
}
