package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/gwopen/gwosc/internal/cache"
	"github.com/gwopen/gwosc/internal/log"
	gwoscerrors "github.com/gwopen/gwosc/pkg/errors"
	"github.com/gwopen/gwosc/pkg/httpclient"
)

// DefaultHost is the default GWOSC archive host URL.
const DefaultHost = "https://www.gw-openscience.org"

// MaxGPS is the open upper bound used for unbounded GPS queries.
const MaxGPS int64 = 99999999999

// Client talks to a GWOSC archive host.
type Client struct {
	host       string
	httpClient *http.Client
	cache      cache.Cache
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client) error

// WithHost sets the archive host URL (no trailing slash).
func WithHost(host string) Option {
	return func(c *Client) error {
		if host == "" {
			return &gwoscerrors.ValidationError{Field: "host", Message: "must not be empty"}
		}
		c.host = host
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) error {
		c.httpClient = client
		return nil
	}
}

// WithHTTPConfig builds the HTTP client from the given transport
// configuration.
func WithHTTPConfig(cfg httpclient.Config) Option {
	return func(c *Client) error {
		client, err := httpclient.New(cfg)
		if err != nil {
			return fmt.Errorf("failed to create http client: %w", err)
		}
		c.httpClient = client
		return nil
	}
}

// WithCache sets the response cache. Pass nil to disable caching.
func WithCache(store cache.Cache) Option {
	return func(c *Client) error {
		c.cache = store
		return nil
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) error {
		c.logger = logger
		return nil
	}
}

// New creates an archive client with the given options.
// Defaults: the public GWOSC host, a retrying rate-limited HTTP client,
// and an in-memory response cache.
func New(opts ...Option) (*Client, error) {
	c := &Client{
		host: DefaultHost,
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.httpClient == nil {
		client, err := httpclient.New(httpclient.DefaultConfig())
		if err != nil {
			return nil, fmt.Errorf("failed to create http client: %w", err)
		}
		c.httpClient = client
	}

	if c.cache == nil {
		c.cache = cache.NewMemory()
	}

	if c.logger == nil {
		c.logger = log.WithComponent(log.New(log.FromEnv()), "api")
	}

	return c, nil
}

// Host returns the archive host this client queries.
func (c *Client) Host() string {
	return c.host
}

// Logger returns the client's structured logger.
func (c *Client) Logger() *slog.Logger {
	return c.logger
}

// FetchJSON fetches a URL and decodes the JSON response body into into.
// Responses are cached by URL, so repeated queries within a session hit
// the network once.
func (c *Client) FetchJSON(ctx context.Context, url string, into any) error {
	body, err := c.fetch(ctx, url)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, into); err != nil {
		return fmt.Errorf("failed to parse archive JSON from %q: %w", url, err)
	}
	return nil
}

// fetch returns the raw response body for url, consulting the cache first.
func (c *Client) fetch(ctx context.Context, url string) ([]byte, error) {
	if body, ok := c.cache.Get(url); ok {
		return body, nil
	}

	c.logger.Debug("fetching", log.URLKey, url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %q: %w", url, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %q failed: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %q: %w", url, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, &gwoscerrors.NotFoundError{Resource: "archive resource", ID: url}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, &gwoscerrors.ServerError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
		}
	}

	c.cache.Set(url, body)
	return body, nil
}

// cached reports whether a URL is already present in the response cache.
func (c *Client) cached(url string) bool {
	_, ok := c.cache.Get(url)
	return ok
}
