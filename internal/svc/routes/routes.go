// If you are AI: This file defines the fixed set of route paths served by testapi.

package routes

// Route paths. The set is fixed at build time.
const (
	Root       = "/"
	Health     = "/health"
	Status     = "/status"
	HealthV1   = "/api/v1/health"
	Metrics    = "/metrics"
	pathSuffix = "{$}" // Anchors "/" so it does not match every path
)

// All returns every route path in the order advertised by the root endpoint.
// A fresh slice is returned so callers may modify it.
func All() []string {
	return []string{Root, Health, Status, HealthV1, Metrics}
}

// Pattern returns the ServeMux pattern for a GET route.
// The root path is anchored so unknown paths fall through to 404.
func Pattern(path string) string {
	if path == Root {
		return "GET " + Root + pathSuffix
	}
	return "GET " + path
}
