package errors

import (
	"fmt"
)

// ValidationError represents invalid query parameters.
// Use this for malformed GPS intervals, unknown dataset types, or other
// constraint violations detected before any request is made.
type ValidationError struct {
	// Field identifies which parameter failed validation
	Field string

	// Message is the human-readable error description
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// NotFoundError represents a resource not found error.
// Use this when a dataset, event, run, or file URL cannot be resolved.
type NotFoundError struct {
	// Resource is the type of resource (e.g., "event", "run", "dataset")
	Resource string

	// ID is the identifier that was not found
	ID string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ServerError represents a failure reported by the remote archive host.
type ServerError struct {
	// URL is the request URL that failed
	URL string

	// StatusCode is the HTTP status code returned by the host
	StatusCode int

	// Message is the human-readable error message
	Message string

	// Cause is the underlying error
	Cause error
}

// Error implements the error interface.
func (e *ServerError) Error() string {
	msg := "archive server error"

	if e.StatusCode > 0 {
		msg = fmt.Sprintf("%s [HTTP %d]", msg, e.StatusCode)
	}

	if e.Message != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Message)
	}

	if e.URL != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.URL)
	}

	return msg
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *ServerError) Unwrap() error {
	return e.Cause
}

// ConfigError represents configuration problems.
// Use this for settings file errors, missing settings, or invalid values.
type ConfigError struct {
	// Key is the configuration key that has the problem (e.g., "host", "cache.path")
	Key string

	// Reason explains what's wrong with the configuration
	Reason string

	// Cause is the underlying error (e.g., file read error, parse error)
	Cause error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("config error at %s: %s", e.Key, e.Reason)
	}
	return fmt.Sprintf("config error: %s", e.Reason)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}
