// If you are AI: This file defines the probe target file format and its loader.
// It uses strict YAML decoding and explicit defaults, like the server config.

package probe

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Targets is the set of addresses and endpoints a probe run checks.
type Targets struct {
	IPAddresses []string         `yaml:"ip_addresses"`      // Empty means auto-detect
	DefaultPort int              `yaml:"default_port"`      // Port used for every address
	Endpoints   []Endpoint       `yaml:"endpoints"`         // Paths to request
	Connection  ConnectionConfig `yaml:"connection_config"` // HTTP client behaviour
}

// Endpoint describes one path and the status it must return.
type Endpoint struct {
	Path           string `yaml:"path"`
	Description    string `yaml:"description"`
	ExpectedStatus int    `yaml:"expected_status"`
	Required       *bool  `yaml:"required"` // nil means required
}

// Connection defaults used when the target file leaves a field unset.
const (
	DefaultTimeoutSeconds = 5.0
	DefaultMaxRedirects   = 3
)

// ConnectionConfig controls the probe HTTP client.
type ConnectionConfig struct {
	TimeoutSeconds *float64          `yaml:"timeout"`         // nil means DefaultTimeoutSeconds
	AllowRedirects *bool             `yaml:"allow_redirects"` // nil means allowed
	MaxRedirects   *int              `yaml:"max_redirects"`   // nil means DefaultMaxRedirects; 0 refuses any redirect
	Headers        map[string]string `yaml:"headers"`
}

// IsRequired reports whether a failure of this endpoint fails the run.
func (e Endpoint) IsRequired() bool {
	return e.Required == nil || *e.Required
}

// Timeout returns the per-request timeout.
func (c ConnectionConfig) Timeout() time.Duration {
	seconds := DefaultTimeoutSeconds
	if c.TimeoutSeconds != nil {
		seconds = *c.TimeoutSeconds
	}
	return time.Duration(seconds * float64(time.Second))
}

// RedirectLimit returns how many redirects a single probe may follow.
func (c ConnectionConfig) RedirectLimit() int {
	if c.MaxRedirects == nil {
		return DefaultMaxRedirects
	}
	return *c.MaxRedirects
}

// FollowRedirects reports whether redirects are followed.
func (c ConnectionConfig) FollowRedirects() bool {
	return c.AllowRedirects == nil || *c.AllowRedirects
}

// LoadTargets reads a probe target file.
// Returns an error if the file cannot be read, decoded, or validated.
func LoadTargets(path string) (*Targets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read targets file: %w", err)
	}

	var t Targets
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&t); err != nil {
		return nil, fmt.Errorf("decode targets: %w", err)
	}

	t.setDefaults()

	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid targets: %w", err)
	}
	return &t, nil
}

// setDefaults applies explicit default values to unset fields.
func (t *Targets) setDefaults() {
	if t.DefaultPort == 0 {
		t.DefaultPort = 8080
	}
	for i := range t.Endpoints {
		if t.Endpoints[i].ExpectedStatus == 0 {
			t.Endpoints[i].ExpectedStatus = 200
		}
	}
}

// Validate checks the target set for values a probe run cannot use.
func (t *Targets) Validate() error {
	if t.DefaultPort <= 0 || t.DefaultPort > 65535 {
		return fmt.Errorf("default_port must be between 1 and 65535, got %d", t.DefaultPort)
	}
	if len(t.Endpoints) == 0 {
		return fmt.Errorf("at least one endpoint is required")
	}
	for i, e := range t.Endpoints {
		if !strings.HasPrefix(e.Path, "/") {
			return fmt.Errorf("endpoint %d: path must start with /, got %q", i, e.Path)
		}
		if e.ExpectedStatus < 100 || e.ExpectedStatus > 599 {
			return fmt.Errorf("endpoint %d: expected_status out of range: %d", i, e.ExpectedStatus)
		}
	}
	if t.Connection.TimeoutSeconds != nil && *t.Connection.TimeoutSeconds <= 0 {
		return fmt.Errorf("connection_config.timeout must be positive, got %v", *t.Connection.TimeoutSeconds)
	}
	if t.Connection.RedirectLimit() < 0 {
		return fmt.Errorf("connection_config.max_redirects must not be negative")
	}
	return nil
}
