package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-sub-keeper/internal/adapter"
	"github.com/MKhiriev/go-sub-keeper/internal/config"
	"github.com/MKhiriev/go-sub-keeper/internal/logger"
	"github.com/MKhiriev/go-sub-keeper/internal/notify"
	"github.com/MKhiriev/go-sub-keeper/internal/service"
	"github.com/MKhiriev/go-sub-keeper/internal/store"
	"github.com/redis/go-redis/v9"
)

// App is an assembled client: the sync engine, its refresh job and the
// optional push relay.
type App struct {
	subscriptions   service.ClientSubscriptionService
	refreshJob      service.ClientRefreshJob
	refreshInterval time.Duration

	// push relay, nil when no Redis URL is configured
	redis       *redis.Client
	pushChannel string

	closers []func() error
	logger  *logger.Logger
}

// NewApp opens the local cache, restores the last known subscription list and
// connects the engine to the server named in cfg.
func NewApp(ctx context.Context, cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, logger)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	services := service.NewClientServices(storages, serverAdapter, logger)
	if err = services.Cache.Load(ctx); err != nil {
		// the next refresh rebuilds the cache
		logger.Err(err).Str("func", "NewApp").Msg("error restoring subscription cache")
	}

	app := &App{
		subscriptions:   services.SubscriptionService,
		refreshJob:      services.RefreshJob,
		refreshInterval: cfg.Workers.RefreshInterval,
		pushChannel:     cfg.Push.Channel,
		closers:         []func() error{storages.Close},
		logger:          logger,
	}

	if cfg.Push.RedisURL != "" {
		app.redis, err = notify.NewRedisClient(cfg.Push.RedisURL)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("create push relay client: %w", err)
		}
		app.closers = append(app.closers, app.redis.Close)
	}

	return app, nil
}

// Close releases the local database and the relay connection.
func (a *App) Close() error {
	var errs []error
	for _, closeFn := range a.closers {
		errs = append(errs, closeFn())
	}
	return errors.Join(errs...)
}
