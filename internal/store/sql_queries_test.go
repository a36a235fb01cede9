// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-sub-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildFindPurchaseQuery(t *testing.T) {
	query, args, err := buildFindPurchaseQuery("tok-1")
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "from purchases")
	assert.Contains(t, q, "where purchase_token = $1")
	for _, col := range purchaseColumns {
		assert.Contains(t, q, col)
	}
	assert.Equal(t, []any{"tok-1"}, args)
}

func Test_buildListUserPurchasesQuery(t *testing.T) {
	query, args, err := buildListUserPurchasesQuery("user-1")
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "where user_id = $1")
	assert.Contains(t, q, "order by created_at asc")
	assert.Equal(t, []any{"user-1"}, args)
}

func Test_buildSavePurchaseQuery_Upserts(t *testing.T) {
	query, args, err := buildSavePurchaseQuery(models.Purchase{
		PurchaseToken: "tok-1",
		UserID:        "user-1",
		SKU:           "premium",
	})
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "insert into purchases (purchase_token,user_id,sku) values ($1,$2,$3)")
	assert.Contains(t, q, "on conflict (purchase_token) do update set user_id = excluded.user_id")
	assert.Equal(t, []any{"tok-1", "user-1", "premium"}, args)
}

func Test_buildDeviceTokenQueries(t *testing.T) {
	t.Run("add is idempotent", func(t *testing.T) {
		query, args, err := buildAddDeviceTokenQuery("user-1", "fcm-1")
		require.NoError(t, err)
		assert.Contains(t, strings.ToLower(query), "on conflict (user_id, token) do nothing")
		assert.Equal(t, []any{"user-1", "fcm-1"}, args)
	})

	t.Run("remove filters by user and token", func(t *testing.T) {
		query, args, err := buildRemoveDeviceTokenQuery("user-1", "fcm-1")
		require.NoError(t, err)
		assert.Contains(t, strings.ToLower(query), "delete from device_tokens where (user_id = $1 and token = $2)")
		assert.Equal(t, []any{"user-1", "fcm-1"}, args)
	})

	t.Run("list", func(t *testing.T) {
		query, args, err := buildListDeviceTokensQuery("user-1")
		require.NoError(t, err)
		assert.Contains(t, strings.ToLower(query), "select token from device_tokens where user_id = $1")
		assert.Equal(t, []any{"user-1"}, args)
	})
}
