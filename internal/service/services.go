package service

import (
	"fmt"

	"github.com/MKhiriev/go-sub-keeper/internal/billing"
	"github.com/MKhiriev/go-sub-keeper/internal/config"
	"github.com/MKhiriev/go-sub-keeper/internal/logger"
	"github.com/MKhiriev/go-sub-keeper/internal/notify"
	"github.com/MKhiriev/go-sub-keeper/internal/store"
)

// Services groups the server-side business services consumed by handlers.
type Services struct {
	IdentityService     IdentityService
	SubscriptionService SubscriptionService
	EntitlementService  EntitlementService
	ContentService      ContentService
	DeviceTokenService  DeviceTokenService
}

// Collaborators are the external systems the services talk to.
type Collaborators struct {
	Play            billing.PlayClient
	Notifier        notify.Notifier
	TokenValidator  notify.TokenValidator
	IDTokenVerifier IDTokenVerifier
}

func NewServices(storages *store.Storages, deps Collaborators, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	identity, err := NewIdentityService(cfg, deps.IDTokenVerifier)
	if err != nil {
		return nil, fmt.Errorf("identity service: %w", err)
	}

	subscriptions := NewSubscriptionService(storages.PurchaseRepository, deps.Play, deps.Notifier, logger)
	entitlements := NewEntitlementService(subscriptions)

	return &Services{
		IdentityService:     identity,
		SubscriptionService: subscriptions,
		EntitlementService:  entitlements,
		ContentService:      NewContentService(entitlements, cfg.App),
		DeviceTokenService:  NewDeviceTokenService(storages.DeviceTokenRepository, deps.TokenValidator, logger),
	}, nil
}
