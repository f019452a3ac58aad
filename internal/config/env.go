// If you are AI: This file applies environment variable overrides on top of file and defaults.

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Environment variables recognised by applyEnvOverrides.
const (
	EnvPort           = "PORT"
	EnvServiceName    = "SERVICE_NAME"
	EnvServiceVersion = "SERVICE_VERSION"
	EnvEnvironment    = "ENVIRONMENT"
	EnvLogLevel       = "LOG_LEVEL"
)

// applyEnvOverrides replaces configured values with non-empty environment variables.
// Returns an error if PORT is set but not an integer.
func (c *Config) applyEnvOverrides() error {
	if raw := strings.TrimSpace(os.Getenv(EnvPort)); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvPort, raw, err)
		}
		c.Server.Port = port
	}
	if name := os.Getenv(EnvServiceName); name != "" {
		c.Service.Name = name
	}
	if version := os.Getenv(EnvServiceVersion); version != "" {
		c.Service.Version = version
	}
	if env := os.Getenv(EnvEnvironment); env != "" {
		c.Service.Environment = env
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.Log.Level = strings.ToLower(level)
	}
	return nil
}
