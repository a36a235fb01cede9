package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sub-keeper/internal/config"
	"github.com/MKhiriev/go-sub-keeper/internal/logger"
)

// Storages groups the server-side repositories.
type Storages struct {
	PurchaseRepository    PurchaseRepository
	DeviceTokenRepository DeviceTokenRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies migrations and builds the
// repositories on the shared handle.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		PurchaseRepository:    NewPurchaseRepository(db, logger),
		DeviceTokenRepository: NewDeviceTokenRepository(db, logger),
		db:                    db,
	}, nil
}

// Close releases the database handle.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
