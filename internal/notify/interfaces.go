// Package notify delivers subscription updates to a user's devices: FCM data
// messages, an optional Redis relay and the client-side relay listener.
package notify

import (
	"context"

	"github.com/MKhiriev/go-sub-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/notify_mock.go -package=mock

// Notifier pushes the user's current subscription list to their devices.
type Notifier interface {
	Notify(ctx context.Context, userID string, list models.SubscriptionStatusList) error
}

// TokenValidator checks that a device token is deliverable without
// delivering anything.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) error
}
