// If you are AI: This file contains tests for the CLI commands.

package main

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"testapi/internal/config"
)

func TestVersionString(t *testing.T) {
	assert.Equal(t, "testapi 1.0.0 (commit unknown, built unknown)", versionString())
}

func TestSetupRejectsBadPort(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	configPath = ""

	err := setup(&cobra.Command{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}

func TestSetupAppliesPort(t *testing.T) {
	t.Setenv("PORT", "18081")
	t.Setenv("LOG_LEVEL", "")
	configPath = ""
	defer func() { cfg, logger = nil, nil }()

	require.NoError(t, setup(&cobra.Command{}, nil))
	assert.Equal(t, 18081, cfg.Server.Port)
	assert.NotNil(t, logger)
}

func TestSetupUsesBuildVersion(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("SERVICE_VERSION", "")
	configPath = ""

	origVersion, origDefault := version, config.DefaultVersion
	defer func() {
		version, config.DefaultVersion = origVersion, origDefault
		cfg, logger = nil, nil
	}()
	version = "4.5.6"

	require.NoError(t, setup(&cobra.Command{}, nil))
	assert.Equal(t, "4.5.6", cfg.Service.Version)
}

func TestProbeIgnoresServerEnv(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	t.Setenv("LOG_LEVEL", "not-a-level")
	defer func() { logger = nil }()

	require.NoError(t, probeCmd.PersistentPreRunE(probeCmd, nil))
	assert.NotNil(t, logger)
}

func TestRunProbe(t *testing.T) {
	logger = zap.NewNop()
	defer func() { logger = nil }()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			w.WriteHeader(http.StatusOK)
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()
	port := srv.Listener.Addr().(*net.TCPAddr).Port

	writeTargets := func(required bool) string {
		path := filepath.Join(t.TempDir(), "endpoints.yaml")
		content := fmt.Sprintf(`ip_addresses: ["127.0.0.1"]
default_port: %d
endpoints:
  - path: /health
    description: Health check
  - path: /gone
    description: Removed route
    required: %t
`, port, required)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	t.Run("optional failure passes", func(t *testing.T) {
		probeTargets = writeTargets(false)
		probePort = 0
		probeConcurrency = 2

		var out bytes.Buffer
		cmd := &cobra.Command{}
		cmd.SetContext(context.Background())
		cmd.SetOut(&out)

		require.NoError(t, runProbe(cmd, nil))
		assert.Contains(t, out.String(), "2 probes: 1 passed, 0 failed, 1 warnings")
		assert.False(t, cmd.SilenceErrors)
	})

	t.Run("required failure fails", func(t *testing.T) {
		probeTargets = writeTargets(true)

		var out bytes.Buffer
		cmd := &cobra.Command{}
		cmd.SetContext(context.Background())
		cmd.SetOut(&out)

		assert.ErrorIs(t, runProbe(cmd, nil), errRequiredFailed)
		assert.Contains(t, out.String(), "FAIL")
		assert.True(t, cmd.SilenceErrors)
	})
}
