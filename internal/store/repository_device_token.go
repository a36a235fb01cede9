package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sub-keeper/internal/logger"
)

// deviceTokenRepository is the PostgreSQL-backed implementation of
// [DeviceTokenRepository] over the "device_tokens" table.
type deviceTokenRepository struct {
	*DB
	logger *logger.Logger
}

// NewDeviceTokenRepository constructs a [DeviceTokenRepository] backed by db.
func NewDeviceTokenRepository(db *DB, logger *logger.Logger) DeviceTokenRepository {
	logger.Debug().Msg("creating device token repository")
	return &deviceTokenRepository{
		DB:     db,
		logger: logger,
	}
}

// AddDeviceToken associates token with userID. An existing pair is left
// untouched.
func (d *deviceTokenRepository) AddDeviceToken(ctx context.Context, userID, token string) error {
	query, args, err := buildAddDeviceTokenQuery(userID, token)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = d.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*deviceTokenRepository.AddDeviceToken").
			Str("user_id", userID).
			Str("pg_code", postgresError(err)).
			Msg("failed to insert device token")
		return d.driverError(ErrExecutingStatement, err)
	}

	return nil
}

// RemoveDeviceToken drops the association. Removing an unknown pair succeeds.
func (d *deviceTokenRepository) RemoveDeviceToken(ctx context.Context, userID, token string) error {
	query, args, err := buildRemoveDeviceTokenQuery(userID, token)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = d.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*deviceTokenRepository.RemoveDeviceToken").
			Str("user_id", userID).
			Msg("failed to delete device token")
		return d.driverError(ErrExecutingStatement, err)
	}

	return nil
}

func (d *deviceTokenRepository) ListDeviceTokens(ctx context.Context, userID string) ([]string, error) {
	query, args, err := buildListDeviceTokensQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := d.DB.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*deviceTokenRepository.ListDeviceTokens").
			Str("user_id", userID).
			Msg("failed to query device tokens")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tokens := make([]string, 0, 2)
	for rows.Next() {
		var token string
		if err = rows.Scan(&token); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		tokens = append(tokens, token)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tokens, nil
}
