package service

import (
	"context"

	"github.com/MKhiriev/go-sub-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// IdentityService resolves the caller's identity credential to a user id.
type IdentityService interface {
	VerifyIDToken(ctx context.Context, rawToken string) (userID string, err error)
}

// SubscriptionService is the facade over the billing-of-record source and the
// purchase ownership store.
type SubscriptionService interface {
	// Status returns the current record of every purchase registered to
	// userID. Any upstream failure fails the whole call.
	Status(ctx context.Context, userID string) ([]models.SubscriptionStatus, error)

	// Register assigns the purchase to userID unless another user owns it
	// with an active entitlement, and returns the caller's updated list.
	Register(ctx context.Context, userID string, req models.RegisterRequest) ([]models.SubscriptionStatus, error)

	// Transfer assigns the purchase to userID whoever owned it before.
	Transfer(ctx context.Context, userID string, req models.RegisterRequest) ([]models.SubscriptionStatus, error)
}

// EntitlementService decides whether a user may access a gated resource.
type EntitlementService interface {
	// Verify allows access iff some record of the user has a ProductID in
	// acceptable and an active entitlement. A failed fetch is an error,
	// never a deny.
	Verify(ctx context.Context, userID string, acceptable []string) (models.EntitlementDecision, error)
}

// ContentService serves the gated content tiers.
type ContentService interface {
	Basic(ctx context.Context, userID string) (models.ContentResource, error)
	Premium(ctx context.Context, userID string) (models.ContentResource, error)
}

// DeviceTokenService maintains the user to push token association.
type DeviceTokenService interface {
	Register(ctx context.Context, userID, token string) error
	Unregister(ctx context.Context, userID, token string) error
}
