package config

import (
	"fmt"
	"time"
)

const (
	defaultClientRequestTimeout = 60 * time.Second
	defaultRefreshInterval      = 15 * time.Minute
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
	IDToken        string
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file holding the subscription cache.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the refresh job polls the server.
	RefreshInterval time.Duration
}

// ClientPush holds the relay the client listens on.
type ClientPush struct {
	RedisURL string
	Channel  string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	Push    ClientPush
}

// GetClientConfig builds and validates the client configuration from the
// environment and the JSON file at jsonPath, which overrides CONFIG when set.
// Command-line flags are left to the caller's command parser.
func GetClientConfig(jsonPath string) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withJSONFilePath(jsonPath).
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			IDToken:        cfg.Adapter.IDToken,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
		Push: ClientPush{
			RedisURL: cfg.Storage.Redis.URL,
			Channel:  cfg.Push.Channel,
		},
	}

	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = defaultClientRequestTimeout
	}
	if clientCfg.Workers.RefreshInterval == 0 {
		clientCfg.Workers.RefreshInterval = defaultRefreshInterval
	}

	return clientCfg
}
