// Package billing talks to the billing-of-record source, the Google Play
// Developer API, and maps its subscription purchases to entitlement records.
package billing

import (
	"context"

	"google.golang.org/api/androidpublisher/v3"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/billing_mock.go -package=mock

// PlayClient fetches the current state of a subscription purchase.
type PlayClient interface {
	// GetSubscription returns the purchase identified by sku and
	// purchaseToken. A purchase Play does not recognise yields
	// [ErrInvalidPurchase]; an unreachable or failing upstream yields
	// [ErrBillingUnavailable].
	GetSubscription(ctx context.Context, sku, purchaseToken string) (*androidpublisher.SubscriptionPurchase, error)
}
