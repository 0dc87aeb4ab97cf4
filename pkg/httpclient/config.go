package httpclient

import (
	"fmt"
	"time"
)

// Config configures the HTTP client with timeout, retry, and rate-limit
// settings.
type Config struct {
	// Timeout is the total request timeout (includes retries).
	// Default: 30s. Must be > 0.
	Timeout time.Duration

	// RetryAttempts is the maximum number of retry attempts (0 = no retries).
	// Default: 3. Must be >= 0.
	RetryAttempts int

	// RetryBackoff is the initial backoff delay before first retry.
	// Default: 100ms. Must be > 0 if RetryAttempts > 0.
	RetryBackoff time.Duration

	// MaxBackoff is the maximum backoff delay cap.
	// Default: 30s. Must be >= RetryBackoff.
	MaxBackoff time.Duration

	// RequestsPerSecond caps the client-side request rate against the
	// archive host (0 = unlimited). Default: 10.
	RequestsPerSecond float64

	// Burst is the rate-limiter burst size. Default: ceil(RequestsPerSecond).
	Burst int

	// UserAgent is the User-Agent header value.
	// Required. Must be non-empty.
	UserAgent string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Timeout:           30 * time.Second,
		RetryAttempts:     3,
		RetryBackoff:      100 * time.Millisecond,
		MaxBackoff:        30 * time.Second,
		RequestsPerSecond: 10,
		UserAgent:         "gwosc-go/1.0",
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0, got %v", c.Timeout)
	}

	if c.RetryAttempts < 0 {
		return fmt.Errorf("retry_attempts must be >= 0, got %d", c.RetryAttempts)
	}

	if c.RetryAttempts > 0 {
		if c.RetryBackoff <= 0 {
			return fmt.Errorf("retry_backoff must be > 0 when retry_attempts > 0, got %v", c.RetryBackoff)
		}

		if c.MaxBackoff < c.RetryBackoff {
			return fmt.Errorf("max_backoff (%v) must be >= retry_backoff (%v)", c.MaxBackoff, c.RetryBackoff)
		}
	}

	if c.RequestsPerSecond < 0 {
		return fmt.Errorf("requests_per_second must be >= 0, got %v", c.RequestsPerSecond)
	}

	if c.UserAgent == "" {
		return fmt.Errorf("user_agent is required and must be non-empty")
	}

	return nil
}

// burst returns the configured burst size, defaulting to the integer
// request rate (minimum 1).
func (c *Config) burst() int {
	if c.Burst > 0 {
		return c.Burst
	}
	b := int(c.RequestsPerSecond)
	if b < 1 {
		b = 1
	}
	return b
}
