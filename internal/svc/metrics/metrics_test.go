// If you are AI: This file contains unit tests for the request counter and its exposition.

package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/prometheus/common/expfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func scrape(t *testing.T, svc *Service) (string, float64) {
	t.Helper()

	mux := http.NewServeMux()
	svc.RegisterRoutes(mux)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	var parser expfmt.TextParser
	families, err := parser.TextToMetricFamilies(strings.NewReader(body))
	require.NoError(t, err)
	require.Len(t, families, 1)

	family, ok := families[RequestsName]
	require.True(t, ok, "missing %s in:\n%s", RequestsName, body)
	require.Len(t, family.GetMetric(), 1)
	return body, family.GetMetric()[0].GetCounter().GetValue()
}

func TestExpositionFormat(t *testing.T) {
	svc := New(zap.NewNop())

	body, value := scrape(t, svc)
	assert.Equal(t, float64(0), value)
	assert.Contains(t, body, "# HELP test_api_requests_total Total requests\n")
	assert.Contains(t, body, "# TYPE test_api_requests_total counter\n")
	assert.Contains(t, body, "test_api_requests_total 0\n")
}

func TestExpositionContentType(t *testing.T) {
	svc := New(zap.NewNop())

	w := httptest.NewRecorder()
	svc.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/plain"))
}

func TestInstrumentCounts(t *testing.T) {
	svc := New(zap.NewNop())
	handler := svc.Instrument(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 3; i++ {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	}

	_, value := scrape(t, svc)
	assert.Equal(t, float64(3), value)

	// Scraping does not count.
	_, value = scrape(t, svc)
	assert.Equal(t, float64(3), value)

	expected := `
# HELP test_api_requests_total Total requests
# TYPE test_api_requests_total counter
test_api_requests_total 3
`
	assert.NoError(t, testutil.GatherAndCompare(svc.Registry(), strings.NewReader(expected), RequestsName))
}

func TestInstrumentConcurrent(t *testing.T) {
	svc := New(zap.NewNop())
	handler := svc.Instrument(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	const workers = 100
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
		}()
	}
	wg.Wait()

	_, value := scrape(t, svc)
	assert.Equal(t, float64(workers), value)
}

func TestNewServiceStartsAtZero(t *testing.T) {
	first := New(zap.NewNop())
	first.Instrument(http.NotFoundHandler()).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	// A second service models a process restart.
	second := New(zap.NewNop())
	_, value := scrape(t, second)
	assert.Equal(t, float64(0), value)
}
