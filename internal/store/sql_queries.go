package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-sub-keeper/models"
)

const (
	purchasesTable    = "purchases"
	deviceTokensTable = "device_tokens"
)

var purchaseColumns = []string{"purchase_token", "user_id", "sku", "created_at", "updated_at"}

// psql builds postgres statements with $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func buildFindPurchaseQuery(purchaseToken string) (string, []any, error) {
	return psql.
		Select(purchaseColumns...).
		From(purchasesTable).
		Where(sq.Eq{"purchase_token": purchaseToken}).
		ToSql()
}

func buildListUserPurchasesQuery(userID string) (string, []any, error) {
	return psql.
		Select(purchaseColumns...).
		From(purchasesTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at ASC", "purchase_token ASC").
		ToSql()
}

// buildSavePurchaseQuery upserts on purchase_token so that a transfer simply
// rewrites the owner.
func buildSavePurchaseQuery(purchase models.Purchase) (string, []any, error) {
	return psql.
		Insert(purchasesTable).
		Columns("purchase_token", "user_id", "sku").
		Values(purchase.PurchaseToken, purchase.UserID, purchase.SKU).
		Suffix("ON CONFLICT (purchase_token) DO UPDATE SET user_id = EXCLUDED.user_id, sku = EXCLUDED.sku, updated_at = NOW()").
		ToSql()
}

func buildAddDeviceTokenQuery(userID, token string) (string, []any, error) {
	return psql.
		Insert(deviceTokensTable).
		Columns("user_id", "token").
		Values(userID, token).
		Suffix("ON CONFLICT (user_id, token) DO NOTHING").
		ToSql()
}

func buildRemoveDeviceTokenQuery(userID, token string) (string, []any, error) {
	return psql.
		Delete(deviceTokensTable).
		Where(sq.And{sq.Eq{"user_id": userID}, sq.Eq{"token": token}}).
		ToSql()
}

func buildListDeviceTokensQuery(userID string) (string, []any, error) {
	return psql.
		Select("token").
		From(deviceTokensTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at ASC").
		ToSql()
}
