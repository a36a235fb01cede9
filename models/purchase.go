// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Purchase is the server-side ownership record linking a purchase token to a
// user account.
type Purchase struct {
	PurchaseToken string    `json:"purchase_token"`
	UserID        string    `json:"user_id"`
	SKU           string    `json:"sku"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// EntitlementDecision is the result of one access check. It lives only for
// the duration of the request that produced it.
type EntitlementDecision struct {
	Allowed bool
	// Matched is the first record that satisfied the check. Nil when denied.
	Matched *SubscriptionStatus
}
