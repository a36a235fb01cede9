package store

import (
	"context"

	"github.com/MKhiriev/go-sub-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// PurchaseRepository stores which account owns which purchase token.
type PurchaseRepository interface {
	// FindPurchase returns the ownership record of purchaseToken or
	// [ErrPurchaseNotFound].
	FindPurchase(ctx context.Context, purchaseToken string) (models.Purchase, error)

	// ListUserPurchases returns every purchase registered to userID, oldest
	// first.
	ListUserPurchases(ctx context.Context, userID string) ([]models.Purchase, error)

	// SavePurchase creates the record or moves it to purchase.UserID.
	SavePurchase(ctx context.Context, purchase models.Purchase) error
}

// DeviceTokenRepository associates push delivery tokens with accounts. Both
// mutations are idempotent.
type DeviceTokenRepository interface {
	AddDeviceToken(ctx context.Context, userID, token string) error
	RemoveDeviceToken(ctx context.Context, userID, token string) error
	ListDeviceTokens(ctx context.Context, userID string) ([]string, error)
}

// ErrorClassificator separates transient driver failures from permanent ones.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
