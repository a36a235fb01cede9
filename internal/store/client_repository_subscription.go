package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-sub-keeper/internal/logger"
	"github.com/MKhiriev/go-sub-keeper/models"
)

type localSubscriptionRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalSubscriptionRepository returns the SQLite-backed
// [LocalSubscriptionRepository]. Each record is stored as its JSON wire form.
func NewLocalSubscriptionRepository(db *DB, logger *logger.Logger) LocalSubscriptionRepository {
	return &localSubscriptionRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localSubscriptionRepository) SaveSubscriptions(ctx context.Context, records []models.SubscriptionStatus) error {
	log := logger.FromContext(ctx)

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*localSubscriptionRepository.SaveSubscriptions").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteAllSubscriptions); err != nil {
		log.Err(err).Str("func", "*localSubscriptionRepository.SaveSubscriptions").Msg("failed to clear subscriptions")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	for position, record := range records {
		status, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("encode subscription %q: %w", record.ProductID, err)
		}

		if _, err = tx.ExecContext(ctx, insertSubscription, position, record.ProductID, string(status)); err != nil {
			log.Err(err).
				Str("func", "*localSubscriptionRepository.SaveSubscriptions").
				Str("product_id", record.ProductID).
				Msg("failed to insert subscription")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (l *localSubscriptionRepository) LoadSubscriptions(ctx context.Context) ([]models.SubscriptionStatus, error) {
	rows, err := l.DB.QueryContext(ctx, selectAllSubscriptions)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*localSubscriptionRepository.LoadSubscriptions").
			Msg("failed to query subscriptions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.SubscriptionStatus, 0)
	for rows.Next() {
		var raw string
		if err = rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		var record models.SubscriptionStatus
		if err = json.Unmarshal([]byte(raw), &record); err != nil {
			return nil, fmt.Errorf("decode cached subscription: %w", err)
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}
