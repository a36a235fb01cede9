// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	deleteAllSubscriptions = `DELETE FROM subscriptions;`

	insertSubscription = `
		INSERT INTO subscriptions (
			position,
			product_id,
			status
		) VALUES (?, ?, ?);`

	selectAllSubscriptions = `
		SELECT
			status
		FROM subscriptions
		ORDER BY position ASC;`
)
