// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's transport to the subscription server.
//
// The primary abstraction is [ServerAdapter], which decouples the sync engine
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]).
//
// Every non-2xx response is returned as *[app.StatusError] carrying the status
// code and the most readable message the body offers, so that the dispatcher
// can classify it. Transport failures are returned wrapped as they come from
// resty.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-sub-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines the calls the client makes to the subscription server.
// Implementations attach the caller's identity credential to every request.
type ServerAdapter interface {
	// FetchSubscriptionStatus returns the caller's authoritative list
	// (GET subscription_status_v2).
	FetchSubscriptionStatus(ctx context.Context) (models.SubscriptionStatusList, error)

	// RegisterSubscription links a purchase to the caller and returns the
	// updated list (PUT subscription_register_v2). A purchase owned by
	// another account yields a 409 status error.
	RegisterSubscription(ctx context.Context, productID, purchaseToken string) (models.SubscriptionStatusList, error)

	// TransferSubscription moves a purchase to the caller and returns the
	// updated list (PUT subscription_transfer_v2).
	TransferSubscription(ctx context.Context, productID, purchaseToken string) (models.SubscriptionStatusList, error)

	// FetchBasicContent returns the basic tier content location
	// (GET content_basic_v2).
	FetchBasicContent(ctx context.Context) (models.ContentResource, error)

	// FetchPremiumContent returns the premium tier content location
	// (GET content_premium_v2).
	FetchPremiumContent(ctx context.Context) (models.ContentResource, error)

	// RegisterDeviceToken associates a push delivery token with the caller
	// (PUT instanceId_register_v2).
	RegisterDeviceToken(ctx context.Context, token string) error

	// UnregisterDeviceToken removes the association
	// (PUT instanceId_unregister_v2).
	UnregisterDeviceToken(ctx context.Context, token string) error
}
