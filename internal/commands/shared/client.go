package shared

import (
	"fmt"

	"github.com/gwopen/gwosc/internal/cache"
	"github.com/gwopen/gwosc/internal/config"
	"github.com/gwopen/gwosc/internal/log"
	"github.com/gwopen/gwosc/pkg/api"
	"github.com/gwopen/gwosc/pkg/httpclient"
)

// NewClient builds an archive client from the settings file, the global
// --host flag, and environment overrides.
func NewClient() (*api.Client, error) {
	settings, err := config.Load(GetConfigPath())
	if err != nil {
		return nil, err
	}

	host := settings.Host
	if flag := GetHost(); flag != "" {
		host = flag
	}

	httpCfg := httpclient.DefaultConfig()
	httpCfg.Timeout = settings.Timeout
	httpCfg.RetryAttempts = settings.RetryAttempts
	httpCfg.RequestsPerSecond = settings.RequestsPerSecond

	var store cache.Cache = cache.NewMemory()
	if settings.Cache.Enabled {
		persistent, err := cache.NewSQLite(cache.SQLiteConfig{
			Path: settings.Cache.Path,
			TTL:  settings.Cache.TTL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to open response cache: %w", err)
		}
		store = cache.NewTiered(cache.NewMemory(), persistent)
	}

	logger := log.New(&log.Config{
		Level:  settings.Log.Level,
		Format: log.Format(settings.Log.Format),
	})

	return api.New(
		api.WithHost(host),
		api.WithHTTPConfig(httpCfg),
		api.WithCache(store),
		api.WithLogger(log.WithComponent(logger, "api")),
	)
}
