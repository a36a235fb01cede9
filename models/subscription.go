// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SubscriptionStatus is the known state of one subscription product for the
// current user.
//
// A record is never patched field by field once constructed: the client cache
// swaps whole records keyed by ProductID. Records with AlreadyOwnedByOtherUser
// set are synthesized locally after a registration conflict and always carry
// EntitlementActive=false.
type SubscriptionStatus struct {
	// ProductID is the catalog SKU of the subscription.
	ProductID string `json:"productId"`

	// PurchaseToken identifies the concrete purchase. It may be empty for
	// synthetic records.
	PurchaseToken string `json:"purchaseToken,omitempty"`

	// EntitlementActive reports whether the user may access the product now.
	EntitlementActive bool `json:"entitlementActive"`

	// WillRenew reports whether the subscription renews at ActiveUntil.
	WillRenew bool `json:"willRenew"`

	// ActiveUntil is the expiry timestamp in milliseconds since epoch.
	ActiveUntil int64 `json:"activeUntilMillisec"`

	IsFreeTrial   bool `json:"isFreeTrial"`
	IsGracePeriod bool `json:"isGracePeriod"`
	IsAccountHold bool `json:"isAccountHold"`
	IsPaused      bool `json:"isPaused"`

	// AutoResumeAt is the timestamp in milliseconds since epoch at which a
	// paused subscription resumes. Zero when not paused.
	AutoResumeAt int64 `json:"autoResumeTimeMillis"`

	// AlreadyOwnedByOtherUser marks a synthetic conflict record.
	AlreadyOwnedByOtherUser bool `json:"alreadyOwnedByOtherUser,omitempty"`

	// IsLocallyOriginated marks a record recorded on-device instead of
	// received from the server.
	IsLocallyOriginated bool `json:"isLocallyOriginated,omitempty"`
}

// SubscriptionStatusList is the wire envelope used by subscription_status_v2,
// the register/transfer responses and push payloads.
type SubscriptionStatusList struct {
	Subscriptions []SubscriptionStatus `json:"subscriptions"`
}

// NewConflictStatus builds the synthetic record representing a product that is
// already owned by another account.
func NewConflictStatus(productID, purchaseToken string) SubscriptionStatus {
	return SubscriptionStatus{
		ProductID:               productID,
		PurchaseToken:           purchaseToken,
		EntitlementActive:       false,
		AlreadyOwnedByOtherUser: true,
	}
}

// RegisterRequest is the body of subscription_register_v2 and
// subscription_transfer_v2.
type RegisterRequest struct {
	ProductID     string `json:"productId"`
	PurchaseToken string `json:"purchaseToken"`
}
