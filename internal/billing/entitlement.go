// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package billing

import (
	"time"

	"github.com/MKhiriev/go-sub-keeper/models"
	"google.golang.org/api/androidpublisher/v3"
)

// Play payment states.
const (
	paymentStatePending   int64 = 0
	paymentStateFreeTrial int64 = 2
)

// ToSubscriptionStatus derives the entitlement record of a Play purchase at
// the instant now. The purchase token is copied into the record.
func ToSubscriptionStatus(sku, purchaseToken string, purchase *androidpublisher.SubscriptionPurchase, now time.Time) models.SubscriptionStatus {
	status := models.SubscriptionStatus{
		ProductID:     sku,
		PurchaseToken: purchaseToken,
	}
	if purchase == nil {
		return status
	}

	nowMillis := now.UnixMilli()
	expiry := purchase.ExpiryTimeMillis
	expired := nowMillis >= expiry
	pending := paymentStateIs(purchase.PaymentState, paymentStatePending)

	status.ActiveUntil = expiry
	status.WillRenew = purchase.AutoRenewing
	status.EntitlementActive = !expired
	status.IsFreeTrial = paymentStateIs(purchase.PaymentState, paymentStateFreeTrial)
	status.IsGracePeriod = pending && !expired
	status.IsAccountHold = pending && expired && purchase.AutoRenewing
	status.IsPaused = purchase.AutoResumeTimeMillis > 0 && expired
	status.AutoResumeAt = purchase.AutoResumeTimeMillis

	return status
}

func paymentStateIs(state *int64, want int64) bool {
	return state != nil && *state == want
}
