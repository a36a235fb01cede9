package store

import (
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-sub-keeper/internal/logger"
	"github.com/MKhiriev/go-sub-keeper/migrations"
)

// DB is a database handle shared by the repositories of one process.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	dialect            migrations.Dialect
	logger             *logger.Logger
}

// Migrate applies the embedded migrations of the handle's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// classify is Permanent without a classifier.
func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return Permanent
	}
	return db.errorClassificator.Classify(err)
}

// driverError wraps err under sentinel. Transient failures additionally match
// [ErrStorageUnavailable].
func (db *DB) driverError(sentinel, err error) error {
	if db.classify(err) == Transient {
		return fmt.Errorf("%w: %w: %w", sentinel, ErrStorageUnavailable, err)
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}
