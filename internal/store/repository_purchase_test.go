package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-sub-keeper/internal/logger"
	"github.com/MKhiriev/go-sub-keeper/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &DB{
		DB:                 conn,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestFindPurchase_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPurchaseRepository(db, logger.Nop())

	now := time.Now()
	rows := sqlmock.NewRows(purchaseColumns).AddRow("tok-1", "user-1", "basic_subscription", now, now)
	mock.ExpectQuery("SELECT (.+) FROM purchases WHERE purchase_token").
		WithArgs("tok-1").
		WillReturnRows(rows)

	got, err := repo.FindPurchase(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", got.UserID)
	assert.Equal(t, "basic_subscription", got.SKU)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindPurchase_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPurchaseRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM purchases").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindPurchase(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrPurchaseNotFound)
}

func TestFindPurchase_DriverError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPurchaseRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM purchases").
		WillReturnError(pgError(pgerrcode.ConnectionFailure))

	_, err := repo.FindPurchase(context.Background(), "tok")
	require.ErrorIs(t, err, ErrScanningRow)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.NotErrorIs(t, err, ErrPurchaseNotFound)
}

func TestListUserPurchases(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPurchaseRepository(db, logger.Nop())

	now := time.Now()
	rows := sqlmock.NewRows(purchaseColumns).
		AddRow("tok-1", "user-1", "basic_subscription", now, now).
		AddRow("tok-2", "user-1", "premium_subscription", now, now)
	mock.ExpectQuery("SELECT (.+) FROM purchases WHERE user_id").
		WithArgs("user-1").
		WillReturnRows(rows)

	got, err := repo.ListUserPurchases(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "tok-2", got[1].PurchaseToken)
}

func TestListUserPurchases_Empty(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPurchaseRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM purchases").
		WillReturnRows(sqlmock.NewRows(purchaseColumns))

	got, err := repo.ListUserPurchases(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListUserPurchases_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPurchaseRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM purchases").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.ListUserPurchases(context.Background(), "user-1")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestSavePurchase(t *testing.T) {
	tests := []struct {
		name    string
		result  sql.Result
		execErr error
		wantErr error
	}{
		{name: "inserted", result: sqlmock.NewResult(0, 1)},
		{name: "nothing written", result: sqlmock.NewResult(0, 0), wantErr: ErrPurchaseNotSaved},
		{name: "driver error", execErr: pgError(pgerrcode.SerializationFailure), wantErr: ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := NewPurchaseRepository(db, logger.Nop())

			purchase := models.Purchase{PurchaseToken: "tok-1", UserID: "user-2", SKU: "basic_subscription"}
			exp := mock.ExpectExec("INSERT INTO purchases").
				WithArgs(purchase.PurchaseToken, purchase.UserID, purchase.SKU)
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(tt.result)
			}

			err := repo.SavePurchase(context.Background(), purchase)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
