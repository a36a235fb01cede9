package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-sub-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientSubscriptionService keeps the local subscription cache in step with the
// server. Every network operation returns immediately; its outcome reaches the
// cache and the observers. The returned channel is closed once the outcome has
// been applied and is meant for hosts and tests that need to wait.
type ClientSubscriptionService interface {
	// RefreshStatus replaces the cache with the server's list.
	RefreshStatus(ctx context.Context) <-chan struct{}

	// Register links a purchase to the user. On success the cache is
	// replaced with the returned list; when another account owns the
	// purchase a conflict record is merged in.
	Register(ctx context.Context, productID, purchaseToken string) <-chan struct{}

	// Transfer moves a purchase to the user and replaces the cache.
	Transfer(ctx context.Context, productID, purchaseToken string) <-chan struct{}

	// FetchBasicContent and FetchPremiumContent store the tier's content
	// location for [ClientSubscriptionService.Content].
	FetchBasicContent(ctx context.Context) <-chan struct{}
	FetchPremiumContent(ctx context.Context) <-chan struct{}
	Content(tier models.ContentTier) (models.ContentResource, bool)

	// RegisterDevice and UnregisterDevice manage the push token on the
	// server. Failures are logged only.
	RegisterDevice(ctx context.Context, token string) <-chan struct{}
	UnregisterDevice(ctx context.Context, token string) <-chan struct{}

	// OnDeviceTokenRefreshed is the host hook for a rotated push token.
	OnDeviceTokenRefreshed(ctx context.Context, token string) <-chan struct{}

	// OnPushPayloadReceived applies a push data payload. A payload without a
	// status, or with one that does not parse, leaves the cache untouched
	// and is reported as an error.
	OnPushPayloadReceived(ctx context.Context, data map[string]string) error

	// LastFailure returns the most recent failed outcome of a dispatched
	// call as an *OperationError, or nil if none has failed yet.
	LastFailure() error

	Busy() bool
	ObserveBusy() (current bool, updates <-chan bool, cancel func())

	Subscriptions() []models.SubscriptionStatus
	ObserveSubscriptions() (current []models.SubscriptionStatus, updates <-chan []models.SubscriptionStatus, cancel func())
}

// ClientRefreshJob periodically refreshes the subscription status.
type ClientRefreshJob interface {
	// Start launches the background goroutine, stopping any previous one.
	// A non-positive interval defaults to 15 minutes.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the goroutine and waits for it to exit.
	Stop()
}
