package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sub-keeper/internal/billing"
	"github.com/MKhiriev/go-sub-keeper/internal/config"
	"github.com/MKhiriev/go-sub-keeper/internal/handler"
	"github.com/MKhiriev/go-sub-keeper/internal/logger"
	"github.com/MKhiriev/go-sub-keeper/internal/notify"
	"github.com/MKhiriev/go-sub-keeper/internal/server"
	"github.com/MKhiriev/go-sub-keeper/internal/service"
	"github.com/MKhiriev/go-sub-keeper/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()
	ctx := context.Background()

	log := logger.NewLogger("go-sub-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	collaborators, closeCollaborators, err := newCollaborators(ctx, cfg, storages, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating external clients")
	}
	defer closeCollaborators()

	services, err := service.NewServices(storages, collaborators, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	version := cfg.App.Version
	if version == "" {
		version = buildVersion
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, version, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// newCollaborators connects the billing-of-record source, Firebase and the
// optional Redis relay.
func newCollaborators(ctx context.Context, cfg *config.StructuredConfig, storages *store.Storages, log *logger.Logger) (service.Collaborators, func(), error) {
	var deps service.Collaborators
	closeFn := func() {}

	play, err := billing.NewPlayClient(ctx, cfg.Billing, log)
	if err != nil {
		return deps, closeFn, fmt.Errorf("play client: %w", err)
	}
	deps.Play = billing.WithCircuitBreaker(play, cfg.Billing, log)

	var notifiers []notify.Notifier

	firebaseApp, err := notify.NewFirebaseApp(ctx, cfg.Firebase)
	switch {
	case err != nil && cfg.Firebase.IdentityMode == config.IdentityModeFirebase:
		return deps, closeFn, err
	case err != nil:
		log.Warn().Err(err).Msg("firebase unavailable, push disabled and device registration rejected")
	default:
		messenger, err := firebaseApp.Messaging(ctx)
		if err != nil {
			return deps, closeFn, fmt.Errorf("firebase messaging: %w", err)
		}
		notifiers = append(notifiers, notify.NewFCMNotifier(messenger, storages.DeviceTokenRepository, log))
		deps.TokenValidator = notify.NewFCMTokenValidator(messenger)

		if cfg.Firebase.IdentityMode == config.IdentityModeFirebase {
			authClient, err := firebaseApp.Auth(ctx)
			if err != nil {
				return deps, closeFn, fmt.Errorf("firebase auth: %w", err)
			}
			deps.IDTokenVerifier = authClient
		}
	}

	if cfg.Storage.Redis.URL != "" {
		redisClient, err := notify.NewRedisClient(cfg.Storage.Redis.URL)
		if err != nil {
			return deps, closeFn, err
		}
		closeFn = func() { redisClient.Close() }
		notifiers = append(notifiers, notify.NewRedisNotifier(redisClient, cfg.Storage.Redis.ChannelPrefix, log))
	}

	deps.Notifier = notify.NewFanout(log, notifiers...)
	return deps, closeFn, nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
