package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-sub-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddDeviceToken(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewDeviceTokenRepository(db, logger.Nop())

	mock.ExpectExec("INSERT INTO device_tokens").
		WithArgs("user-1", "fcm-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	// already registered: ON CONFLICT DO NOTHING affects no rows
	mock.ExpectExec("INSERT INTO device_tokens").
		WithArgs("user-1", "fcm-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.AddDeviceToken(context.Background(), "user-1", "fcm-1"))
	require.NoError(t, repo.AddDeviceToken(context.Background(), "user-1", "fcm-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddDeviceToken_Error(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewDeviceTokenRepository(db, logger.Nop())

	mock.ExpectExec("INSERT INTO device_tokens").WillReturnError(errors.New("boom"))

	err := repo.AddDeviceToken(context.Background(), "user-1", "fcm-1")
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestRemoveDeviceToken_Unknown(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewDeviceTokenRepository(db, logger.Nop())

	mock.ExpectExec("DELETE FROM device_tokens").
		WithArgs("user-1", "never-added").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.RemoveDeviceToken(context.Background(), "user-1", "never-added"))
}

func TestListDeviceTokens(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewDeviceTokenRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT token FROM device_tokens").
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"token"}).AddRow("a").AddRow("b"))

	got, err := repo.ListDeviceTokens(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)
}
