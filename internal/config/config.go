// If you are AI: This file defines the configuration structure for testapi.
// It uses strict YAML decoding, explicit defaults, and environment overrides.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the complete server configuration.
// It is populated once at startup and passed to the server constructor.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Service ServiceConfig `yaml:"service"`
	Log     LogConfig     `yaml:"log"`
}

// ServerConfig defines HTTP listener settings.
type ServerConfig struct {
	Port            int           `yaml:"port"`             // TCP listen port
	ReadTimeout     time.Duration `yaml:"read_timeout"`     // Max time to read a request
	WriteTimeout    time.Duration `yaml:"write_timeout"`    // Max time to write a response
	IdleTimeout     time.Duration `yaml:"idle_timeout"`     // Keep-alive idle timeout
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"` // Grace period for in-flight requests
}

// ServiceConfig is the service metadata surfaced by the endpoints.
// It is constant for the lifetime of the process.
type ServiceConfig struct {
	Name        string `yaml:"name"`                  // Service identifier, e.g. "test-api"
	Title       string `yaml:"title"`                 // Human readable name used in "<title> is running"
	Version     string `yaml:"version"`               // Reported in /health
	Environment string `yaml:"environment,omitempty"` // Optional environment label
}

// LogConfig defines logger settings.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn or error
	Format string `yaml:"format"` // json or console
}

// Load reads configuration from a YAML file, applies defaults and then environment overrides.
// An empty path skips the file and yields defaults plus overrides.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}

		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true) // Reject unknown fields

		// An empty file decodes to io.EOF; treat it as "no settings".
		if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode config: %w", err)
		}
	}

	cfg.setDefaults()

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// DefaultVersion is the service version reported when neither the config file
// nor SERVICE_VERSION sets one. The binary replaces it with its build version.
var DefaultVersion = "1.0.0"

// Default returns a configuration with every default applied and no overrides.
func Default() *Config {
	var cfg Config
	cfg.setDefaults()
	return &cfg
}

// setDefaults applies explicit default values to unset fields.
func (c *Config) setDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15 * time.Second
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 5 * time.Second
	}
	if c.Service.Name == "" {
		c.Service.Name = "test-api"
	}
	if c.Service.Title == "" {
		c.Service.Title = "Test API"
	}
	if c.Service.Version == "" {
		c.Service.Version = DefaultVersion
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "json"
	}
}
