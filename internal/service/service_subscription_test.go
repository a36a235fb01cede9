// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-sub-keeper/internal/app"
	"github.com/MKhiriev/go-sub-keeper/internal/billing"
	"github.com/MKhiriev/go-sub-keeper/internal/logger"
	"github.com/MKhiriev/go-sub-keeper/internal/mock"
	"github.com/MKhiriev/go-sub-keeper/internal/store"
	"github.com/MKhiriev/go-sub-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/api/androidpublisher/v3"
)

var testNow = time.UnixMilli(5_000_000)

func activePurchase() *androidpublisher.SubscriptionPurchase {
	return &androidpublisher.SubscriptionPurchase{ExpiryTimeMillis: testNow.Add(time.Hour).UnixMilli(), AutoRenewing: true}
}

func expiredPurchase() *androidpublisher.SubscriptionPurchase {
	return &androidpublisher.SubscriptionPurchase{ExpiryTimeMillis: testNow.Add(-time.Hour).UnixMilli()}
}

type subscriptionFixture struct {
	svc       *subscriptionService
	purchases *mock.MockPurchaseRepository
	play      *mock.MockPlayClient
	notifier  *mock.MockNotifier
}

func newSubscriptionFixture(t *testing.T) subscriptionFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := subscriptionFixture{
		purchases: mock.NewMockPurchaseRepository(ctrl),
		play:      mock.NewMockPlayClient(ctrl),
		notifier:  mock.NewMockNotifier(ctrl),
	}
	f.svc = NewSubscriptionService(f.purchases, f.play, f.notifier, logger.Nop()).(*subscriptionService)
	f.svc.now = func() time.Time { return testNow }
	return f
}

func TestSubscriptionService_Status(t *testing.T) {
	f := newSubscriptionFixture(t)
	ctx := context.Background()

	f.purchases.EXPECT().ListUserPurchases(ctx, "u1").Return([]models.Purchase{
		{PurchaseToken: "t1", UserID: "u1", SKU: "basic"},
		{PurchaseToken: "t2", UserID: "u1", SKU: "premium"},
	}, nil)
	f.play.EXPECT().GetSubscription(ctx, "basic", "t1").Return(activePurchase(), nil)
	f.play.EXPECT().GetSubscription(ctx, "premium", "t2").Return(expiredPurchase(), nil)

	got, err := f.svc.Status(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "basic", got[0].ProductID)
	assert.True(t, got[0].EntitlementActive)
	assert.Equal(t, "premium", got[1].ProductID)
	assert.False(t, got[1].EntitlementActive)
}

func TestSubscriptionService_Status_Empty(t *testing.T) {
	f := newSubscriptionFixture(t)
	ctx := context.Background()
	f.purchases.EXPECT().ListUserPurchases(ctx, "u1").Return([]models.Purchase{}, nil)

	got, err := f.svc.Status(ctx, "u1")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSubscriptionService_Status_BillingFailureFailsWholeCall(t *testing.T) {
	f := newSubscriptionFixture(t)
	ctx := context.Background()

	f.purchases.EXPECT().ListUserPurchases(ctx, "u1").Return([]models.Purchase{
		{PurchaseToken: "t1", SKU: "basic"},
		{PurchaseToken: "t2", SKU: "premium"},
	}, nil)
	f.play.EXPECT().GetSubscription(ctx, "basic", "t1").Return(nil, billing.ErrBillingUnavailable)

	got, err := f.svc.Status(ctx, "u1")
	assert.Nil(t, got)
	assert.Equal(t, app.Internal, app.CodeOf(err))
}

func TestSubscriptionService_Register_NewPurchase(t *testing.T) {
	f := newSubscriptionFixture(t)
	ctx := context.Background()
	req := models.RegisterRequest{ProductID: "basic", PurchaseToken: "t1"}

	f.play.EXPECT().GetSubscription(ctx, "basic", "t1").Return(activePurchase(), nil).Times(2)
	f.purchases.EXPECT().FindPurchase(ctx, "t1").Return(models.Purchase{}, store.ErrPurchaseNotFound)
	f.purchases.EXPECT().SavePurchase(ctx, models.Purchase{PurchaseToken: "t1", UserID: "u1", SKU: "basic"}).Return(nil)
	f.purchases.EXPECT().ListUserPurchases(ctx, "u1").Return([]models.Purchase{{PurchaseToken: "t1", UserID: "u1", SKU: "basic"}}, nil)
	f.notifier.EXPECT().Notify(ctx, "u1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, list models.SubscriptionStatusList) error {
			assert.Len(t, list.Subscriptions, 1)
			return nil
		})

	got, err := f.svc.Register(ctx, "u1", req)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].EntitlementActive)
}

func TestSubscriptionService_Register_OwnedByOtherUserIsConflict(t *testing.T) {
	f := newSubscriptionFixture(t)
	ctx := context.Background()

	f.play.EXPECT().GetSubscription(ctx, "basic", "t1").Return(activePurchase(), nil)
	f.purchases.EXPECT().FindPurchase(ctx, "t1").Return(models.Purchase{PurchaseToken: "t1", UserID: "other"}, nil)

	_, err := f.svc.Register(ctx, "u1", models.RegisterRequest{ProductID: "basic", PurchaseToken: "t1"})
	assert.Equal(t, app.Conflict, app.CodeOf(err))
}

func TestSubscriptionService_Register_ExpiredPurchaseOfOtherUserIsReassigned(t *testing.T) {
	f := newSubscriptionFixture(t)
	ctx := context.Background()

	f.play.EXPECT().GetSubscription(ctx, "basic", "t1").Return(expiredPurchase(), nil).Times(2)
	f.purchases.EXPECT().FindPurchase(ctx, "t1").Return(models.Purchase{PurchaseToken: "t1", UserID: "other"}, nil)
	f.purchases.EXPECT().SavePurchase(ctx, gomock.Any()).Return(nil)
	f.purchases.EXPECT().ListUserPurchases(ctx, "u1").Return([]models.Purchase{{PurchaseToken: "t1", SKU: "basic"}}, nil)
	f.notifier.EXPECT().Notify(ctx, "u1", gomock.Any()).Return(nil)

	_, err := f.svc.Register(ctx, "u1", models.RegisterRequest{ProductID: "basic", PurchaseToken: "t1"})
	assert.NoError(t, err)
}

func TestSubscriptionService_Register_Errors(t *testing.T) {
	tests := []struct {
		name     string
		req      models.RegisterRequest
		setup    func(f subscriptionFixture)
		wantCode app.Code
	}{
		{
			name:     "missing fields",
			req:      models.RegisterRequest{ProductID: "basic"},
			setup:    func(subscriptionFixture) {},
			wantCode: app.InvalidArgument,
		},
		{
			name: "play rejects purchase",
			req:  models.RegisterRequest{ProductID: "basic", PurchaseToken: "bad"},
			setup: func(f subscriptionFixture) {
				f.play.EXPECT().GetSubscription(gomock.Any(), "basic", "bad").Return(nil, billing.ErrInvalidPurchase)
			},
			wantCode: app.InvalidArgument,
		},
		{
			name: "play unavailable",
			req:  models.RegisterRequest{ProductID: "basic", PurchaseToken: "t1"},
			setup: func(f subscriptionFixture) {
				f.play.EXPECT().GetSubscription(gomock.Any(), "basic", "t1").Return(nil, billing.ErrBillingUnavailable)
			},
			wantCode: app.Internal,
		},
		{
			name: "owner lookup fails",
			req:  models.RegisterRequest{ProductID: "basic", PurchaseToken: "t1"},
			setup: func(f subscriptionFixture) {
				f.play.EXPECT().GetSubscription(gomock.Any(), "basic", "t1").Return(activePurchase(), nil)
				f.purchases.EXPECT().FindPurchase(gomock.Any(), "t1").Return(models.Purchase{}, errors.New("db down"))
			},
			wantCode: app.Internal,
		},
		{
			name: "save fails",
			req:  models.RegisterRequest{ProductID: "basic", PurchaseToken: "t1"},
			setup: func(f subscriptionFixture) {
				f.play.EXPECT().GetSubscription(gomock.Any(), "basic", "t1").Return(activePurchase(), nil)
				f.purchases.EXPECT().FindPurchase(gomock.Any(), "t1").Return(models.Purchase{}, store.ErrPurchaseNotFound)
				f.purchases.EXPECT().SavePurchase(gomock.Any(), gomock.Any()).Return(store.ErrPurchaseNotSaved)
			},
			wantCode: app.Internal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSubscriptionFixture(t)
			tt.setup(f)

			got, err := f.svc.Register(context.Background(), "u1", tt.req)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.Equal(t, tt.wantCode, app.CodeOf(err))
		})
	}
}

func TestSubscriptionService_Transfer_NotifiesBothOwners(t *testing.T) {
	f := newSubscriptionFixture(t)
	ctx := context.Background()

	f.play.EXPECT().GetSubscription(ctx, "premium", "t1").Return(activePurchase(), nil).Times(2)
	f.purchases.EXPECT().FindPurchase(ctx, "t1").Return(models.Purchase{PurchaseToken: "t1", UserID: "old"}, nil)
	f.purchases.EXPECT().SavePurchase(ctx, models.Purchase{PurchaseToken: "t1", UserID: "new", SKU: "premium"}).Return(nil)
	f.purchases.EXPECT().ListUserPurchases(ctx, "new").Return([]models.Purchase{{PurchaseToken: "t1", SKU: "premium"}}, nil)
	f.purchases.EXPECT().ListUserPurchases(ctx, "old").Return([]models.Purchase{}, nil)
	f.notifier.EXPECT().Notify(ctx, "new", gomock.Any()).Return(nil)
	f.notifier.EXPECT().Notify(ctx, "old", models.SubscriptionStatusList{Subscriptions: []models.SubscriptionStatus{}}).Return(nil)

	got, err := f.svc.Transfer(ctx, "new", models.RegisterRequest{ProductID: "premium", PurchaseToken: "t1"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "premium", got[0].ProductID)
}

func TestSubscriptionService_NotifyFailureDoesNotFailRequest(t *testing.T) {
	f := newSubscriptionFixture(t)
	ctx := context.Background()

	f.play.EXPECT().GetSubscription(ctx, "basic", "t1").Return(activePurchase(), nil).Times(2)
	f.purchases.EXPECT().FindPurchase(ctx, "t1").Return(models.Purchase{}, store.ErrPurchaseNotFound)
	f.purchases.EXPECT().SavePurchase(ctx, gomock.Any()).Return(nil)
	f.purchases.EXPECT().ListUserPurchases(ctx, "u1").Return([]models.Purchase{{PurchaseToken: "t1", SKU: "basic"}}, nil)
	f.notifier.EXPECT().Notify(ctx, "u1", gomock.Any()).Return(errors.New("fcm down"))

	_, err := f.svc.Register(ctx, "u1", models.RegisterRequest{ProductID: "basic", PurchaseToken: "t1"})
	assert.NoError(t, err)
}
