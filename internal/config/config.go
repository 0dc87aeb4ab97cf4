// Package config loads client settings from the XDG config directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gwopen/gwosc/pkg/api"
	gwoscerrors "github.com/gwopen/gwosc/pkg/errors"
)

// DefaultHost is the default GWOSC archive host URL.
const DefaultHost = api.DefaultHost

// Settings holds the user-configurable client settings.
type Settings struct {
	// Host is the archive host URL.
	Host string `yaml:"host"`

	// Timeout is the total HTTP request timeout.
	Timeout time.Duration `yaml:"timeout"`

	// RetryAttempts is the maximum number of HTTP retry attempts.
	RetryAttempts int `yaml:"retry_attempts"`

	// RequestsPerSecond caps the client-side request rate (0 = unlimited).
	RequestsPerSecond float64 `yaml:"requests_per_second"`

	// Cache configures the persistent response cache.
	Cache CacheSettings `yaml:"cache"`

	// Log configures logging output.
	Log LogSettings `yaml:"log"`
}

// CacheSettings configures the persistent response cache.
type CacheSettings struct {
	// Enabled turns the SQLite-backed cache on. The in-memory cache is
	// always active.
	Enabled bool `yaml:"enabled"`

	// Path overrides the cache database location.
	Path string `yaml:"path"`

	// TTL is how long cached responses stay fresh.
	TTL time.Duration `yaml:"ttl"`
}

// LogSettings configures logging output.
type LogSettings struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in settings.
func Default() *Settings {
	return &Settings{
		Host:              DefaultHost,
		Timeout:           30 * time.Second,
		RetryAttempts:     3,
		RequestsPerSecond: 10,
		Cache: CacheSettings{
			Enabled: false,
			TTL:     24 * time.Hour,
		},
		Log: LogSettings{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Load reads settings from path, falling back to the default settings
// path when path is empty. A missing file yields the defaults. The
// GWOSC_HOST environment variable overrides the configured host.
func Load(path string) (*Settings, error) {
	settings := Default()

	if path == "" {
		var err error
		path, err = SettingsPath()
		if err != nil {
			return nil, &gwoscerrors.ConfigError{
				Reason: "cannot resolve settings path",
				Cause:  err,
			}
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			applyEnv(settings)
			return settings, nil
		}
		return nil, &gwoscerrors.ConfigError{
			Reason: fmt.Sprintf("cannot read %s", path),
			Cause:  err,
		}
	}

	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, &gwoscerrors.ConfigError{
			Reason: fmt.Sprintf("cannot parse %s", path),
			Cause:  err,
		}
	}

	applyEnv(settings)

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return settings, nil
}

// applyEnv applies environment variable overrides.
func applyEnv(s *Settings) {
	if host := os.Getenv("GWOSC_HOST"); host != "" {
		s.Host = host
	}
}

// Validate checks the settings for consistency.
func (s *Settings) Validate() error {
	if s.Host == "" {
		return &gwoscerrors.ConfigError{Key: "host", Reason: "must not be empty"}
	}
	if s.Timeout <= 0 {
		return &gwoscerrors.ConfigError{Key: "timeout", Reason: "must be positive"}
	}
	if s.RetryAttempts < 0 {
		return &gwoscerrors.ConfigError{Key: "retry_attempts", Reason: "must not be negative"}
	}
	if s.RequestsPerSecond < 0 {
		return &gwoscerrors.ConfigError{Key: "requests_per_second", Reason: "must not be negative"}
	}
	return nil
}
