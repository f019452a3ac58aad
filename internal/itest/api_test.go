// If you are AI: This file contains integration tests for the HTTP endpoints of a running binary.
// Tests verify response schemas, 404 handling, concurrent bursts, and counter lifecycle.

package itest

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/common/expfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startBinary runs the binary on a free port and stops it when the test ends.
func startBinary(t *testing.T, binPath string, env ...string) *Process {
	t.Helper()

	port := FindFreePort(t)
	proc, err := StartServer(context.Background(), binPath, port, env...)
	require.NoError(t, err)

	if err := WaitForHealth(port, 5*time.Second); err != nil {
		proc.Cmd.Process.Kill()
		t.Fatalf("Health endpoint not available: %v", err)
	}
	return proc
}

// requestCount scrapes /metrics and returns test_api_requests_total.
func requestCount(t *testing.T, proc *Process) float64 {
	t.Helper()

	resp, err := http.Get(proc.URL("/metrics"))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/plain"))

	var parser expfmt.TextParser
	families, err := parser.TextToMetricFamilies(resp.Body)
	require.NoError(t, err)
	require.Len(t, families, 1)

	family := families["test_api_requests_total"]
	require.NotNil(t, family)
	return family.GetMetric()[0].GetCounter().GetValue()
}

func getJSON(t *testing.T, url string) map[string]interface{} {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode, url)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestEndpoints(t *testing.T) {
	binPath := BuildBinary(t)
	proc := startBinary(t, binPath, "SERVICE_VERSION=3.1.4", "ENVIRONMENT=itest")
	defer proc.Stop(5 * time.Second)

	root := getJSON(t, proc.URL("/"))
	assert.Equal(t, "Test API is running", root["message"])
	assert.Equal(t, "healthy", root["status"])
	assert.Equal(t, []interface{}{"/", "/health", "/status", "/api/v1/health", "/metrics"}, root["endpoints"])

	health := getJSON(t, proc.URL("/health"))
	assert.Equal(t, map[string]interface{}{
		"status":      "healthy",
		"service":     "test-api",
		"version":     "3.1.4",
		"environment": "itest",
	}, health)

	status := getJSON(t, proc.URL("/status"))
	assert.Equal(t, "running", status["status"])
	assert.Equal(t, "test-api", status["service"])
	assert.NotEmpty(t, status["uptime"])

	v1 := getJSON(t, proc.URL("/api/v1/health"))
	assert.Equal(t, "v1", v1["api_version"])
	assert.Equal(t, "healthy", v1["status"])

	resp, err := http.Get(proc.URL("/nonexistent"))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMetricsCountsBurst(t *testing.T) {
	binPath := BuildBinary(t)
	proc := startBinary(t, binPath)
	defer proc.Stop(5 * time.Second)

	before := requestCount(t, proc)

	const burst = 100
	var wg sync.WaitGroup
	codes := make(chan int, burst)
	wg.Add(burst)
	for i := 0; i < burst; i++ {
		go func() {
			defer wg.Done()
			resp, err := http.Get(proc.URL("/health"))
			if err != nil {
				codes <- 0
				return
			}
			resp.Body.Close()
			codes <- resp.StatusCode
		}()
	}
	wg.Wait()
	close(codes)

	for code := range codes {
		assert.Equal(t, http.StatusOK, code)
	}
	assert.Equal(t, before+burst, requestCount(t, proc))
}

func TestCounterResetsOnRestart(t *testing.T) {
	binPath := BuildBinary(t)

	proc := startBinary(t, binPath)
	for i := 0; i < 5; i++ {
		getJSON(t, proc.URL("/status"))
	}
	// One /health from WaitForHealth plus five /status calls.
	assert.Equal(t, float64(6), requestCount(t, proc))

	code, err := proc.Stop(5 * time.Second)
	require.NoError(t, err)
	require.Equal(t, 0, code)

	restarted := startBinary(t, binPath)
	defer restarted.Stop(5 * time.Second)
	assert.Equal(t, float64(1), requestCount(t, restarted))
}
