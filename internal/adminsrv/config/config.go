// Package config loads and validates the admin server configuration from a
// TOML file with environment variable overrides. A .env file, when present,
// is loaded first so local development does not need exported variables.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// SessionConfig holds session cookie configuration.
type SessionConfig struct {
	CookieName string `toml:"cookie_name"` // Name of the session cookie
	MaxAge     string `toml:"max_age"`     // Cookie lifetime, e.g. "168h"
	Secure     bool   `toml:"secure"`      // Set the Secure attribute (production)
}

// GetMaxAge returns the session cookie lifetime as a time.Duration.
func (s *SessionConfig) GetMaxAge() (time.Duration, error) {
	return ParseDuration(s.MaxAge)
}

// GetMaxAgeOrDefault returns the session cookie lifetime or panics if the
// configured value is invalid.
func (s *SessionConfig) GetMaxAgeOrDefault() time.Duration {
	d, err := s.GetMaxAge()
	if err != nil {
		panic(fmt.Sprintf("invalid session max age: %v", err))
	}
	return d
}

// BackendConfig holds configuration for the remote Mayhem API.
type BackendConfig struct {
	APIURL         string `toml:"api_url"`         // Base URL of the backend API
	CacheTTL       string `toml:"cache_ttl"`       // TTL for cached GET responses
	RetryAttempts  uint   `toml:"retry_attempts"`  // Transport retry attempts for GETs
	RequestTimeout string `toml:"request_timeout"` // Per-request timeout on the transport
}

// GetCacheTTL returns the GET-response cache TTL as a time.Duration.
func (b *BackendConfig) GetCacheTTL() (time.Duration, error) {
	return ParseDuration(b.CacheTTL)
}

// GetCacheTTLOrDefault returns the cache TTL or panics if invalid.
func (b *BackendConfig) GetCacheTTLOrDefault() time.Duration {
	d, err := b.GetCacheTTL()
	if err != nil {
		panic(fmt.Sprintf("invalid cache ttl: %v", err))
	}
	return d
}

// GetRequestTimeout returns the transport timeout as a time.Duration.
func (b *BackendConfig) GetRequestTimeout() (time.Duration, error) {
	return ParseDuration(b.RequestTimeout)
}

// GetRequestTimeoutOrDefault returns the transport timeout or panics if invalid.
func (b *BackendConfig) GetRequestTimeoutOrDefault() time.Duration {
	d, err := b.GetRequestTimeout()
	if err != nil {
		panic(fmt.Sprintf("invalid request timeout: %v", err))
	}
	return d
}

// ConfigParam holds all configuration parameters for the admin server.
type ConfigParam struct {
	FormatVersion string `toml:"format_version"` // Version of this configuration file format

	ServerHostName string `toml:"server_hostname"` // Hostname for the server
	ServerPort     string `toml:"server_port"`     // Port for the server
	HandleCORS     bool   `toml:"handle_cors"`     // Whether to handle CORS
	CORSOrigin     string `toml:"cors_origin"`     // Allowed origin when CORS is enabled
	HandlerTimeout string `toml:"handler_timeout"` // Per-request handler timeout

	Session SessionConfig `toml:"session"`
	Backend BackendConfig `toml:"backend"`
}

// GetHandlerTimeout returns the handler timeout as a time.Duration.
func (c *ConfigParam) GetHandlerTimeout() (time.Duration, error) {
	return ParseDuration(c.HandlerTimeout)
}

// GetHandlerTimeoutOrDefault returns the handler timeout or panics if invalid.
func (c *ConfigParam) GetHandlerTimeoutOrDefault() time.Duration {
	d, err := c.GetHandlerTimeout()
	if err != nil {
		panic(fmt.Sprintf("invalid handler timeout: %v", err))
	}
	return d
}

var cfg *ConfigParam

// Config returns the loaded configuration. LoadConfig or TestInit must have
// been called first.
func Config() *ConfigParam {
	return cfg
}

// defaultConfig returns a ConfigParam populated with defaults. Everything but
// the backend API URL has a usable default.
func defaultConfig() *ConfigParam {
	return &ConfigParam{
		FormatVersion:  "0.1.0",
		ServerHostName: "0.0.0.0",
		ServerPort:     "8190",
		HandlerTimeout: "30s",
		Session: SessionConfig{
			CookieName: "auth_token",
			MaxAge:     "168h", // 7 days
			Secure:     false,
		},
		Backend: BackendConfig{
			CacheTTL:       "30s",
			RetryAttempts:  3,
			RequestTimeout: "15s",
		},
	}
}

// LoadConfig loads configuration from the given TOML file, applies
// environment overrides, and validates the result. An empty file path loads
// defaults plus environment overrides only.
func LoadConfig(file string) error {
	// Load .env if present; existing environment variables win.
	_ = godotenv.Load()

	c := defaultConfig()
	if file != "" {
		if _, err := toml.DecodeFile(file, c); err != nil {
			return fmt.Errorf("unable to parse config file: %w", err)
		}
	}

	applyEnvOverrides(c)

	if err := c.Validate(); err != nil {
		return err
	}

	cfg = c
	return nil
}

// applyEnvOverrides applies MAYHEM_* environment variables over the file
// values. Only settings that differ per deployment are overridable.
func applyEnvOverrides(c *ConfigParam) {
	if v := os.Getenv("MAYHEM_API_URL"); v != "" {
		c.Backend.APIURL = v
	}
	if v := os.Getenv("MAYHEM_SERVER_PORT"); v != "" {
		c.ServerPort = v
	}
	if v := os.Getenv("MAYHEM_COOKIE_SECURE"); v != "" {
		c.Session.Secure = v == "true" || v == "1"
	}
}

// Validate checks the configuration for missing or malformed values.
func (c *ConfigParam) Validate() error {
	if c.Backend.APIURL == "" {
		return fmt.Errorf("backend api_url is required (set MAYHEM_API_URL or backend.api_url)")
	}
	if c.ServerPort == "" {
		return fmt.Errorf("server_port is required")
	}
	if c.Session.CookieName == "" {
		return fmt.Errorf("session cookie_name is required")
	}
	if _, err := c.Session.GetMaxAge(); err != nil {
		return fmt.Errorf("invalid session max_age: %w", err)
	}
	if _, err := c.Backend.GetCacheTTL(); err != nil {
		return fmt.Errorf("invalid backend cache_ttl: %w", err)
	}
	if _, err := c.Backend.GetRequestTimeout(); err != nil {
		return fmt.Errorf("invalid backend request_timeout: %w", err)
	}
	if _, err := c.GetHandlerTimeout(); err != nil {
		return fmt.Errorf("invalid handler_timeout: %w", err)
	}
	return nil
}

// TestInit loads default configuration pointed at the given backend URL.
// Intended for tests only.
func TestInit(backendURL string) {
	c := defaultConfig()
	c.Backend.APIURL = backendURL
	cfg = c
}

// ParseDuration parses a duration string such as "30s" or "168h".
// An empty string is an error.
func ParseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, fmt.Errorf("empty duration")
	}
	return time.ParseDuration(s)
}
