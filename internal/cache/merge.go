// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cache holds the client's current list of subscription records and
// the merge rules used to update it.
package cache

import "github.com/MKhiriev/go-sub-keeper/models"

// InsertOrUpdate returns a new list in which incoming takes the place of every
// record with the same ProductID, keeping its position. When no record
// matches, incoming is appended. existing is never modified.
//
// Applying the same incoming twice yields the same list as applying it once.
func InsertOrUpdate(existing []models.SubscriptionStatus, incoming models.SubscriptionStatus) []models.SubscriptionStatus {
	if len(existing) == 0 {
		return []models.SubscriptionStatus{incoming}
	}

	merged := make([]models.SubscriptionStatus, 0, len(existing)+1)
	matched := false
	for _, record := range existing {
		if record.ProductID == incoming.ProductID {
			if matched {
				// drop duplicates so the product stays unique
				continue
			}
			merged = append(merged, incoming)
			matched = true
			continue
		}
		merged = append(merged, record)
	}

	if !matched {
		merged = append(merged, incoming)
	}

	return merged
}

// clone copies list so callers never share the backing array with the cache.
// A nil list becomes an empty one: "owns nothing" is a valid state.
func clone(list []models.SubscriptionStatus) []models.SubscriptionStatus {
	out := make([]models.SubscriptionStatus, len(list))
	copy(out, list)
	return out
}
