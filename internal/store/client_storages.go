package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sub-keeper/internal/config"
	"github.com/MKhiriev/go-sub-keeper/internal/logger"
)

// ClientStorages groups the client-side repositories.
type ClientStorages struct {
	// SubscriptionRepository persists the subscription cache between runs.
	SubscriptionRepository LocalSubscriptionRepository

	db *DB
}

// NewClientStorages opens the SQLite file named by cfg.DB.DSN, creating it
// when missing, and applies the client migrations.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Debug().Msg("creating client storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		SubscriptionRepository: NewLocalSubscriptionRepository(db, logger),
		db:                     db,
	}, nil
}

func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
