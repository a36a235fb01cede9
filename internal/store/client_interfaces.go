package store

import (
	"context"

	"github.com/MKhiriev/go-sub-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalSubscriptionRepository persists the client's subscription cache.
type LocalSubscriptionRepository interface {
	// SaveSubscriptions replaces the stored list with records, keeping order.
	SaveSubscriptions(ctx context.Context, records []models.SubscriptionStatus) error

	// LoadSubscriptions returns the stored list in its saved order. An empty
	// store yields an empty, non-nil list.
	LoadSubscriptions(ctx context.Context) ([]models.SubscriptionStatus, error)
}
