package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sub-keeper/internal/logger"
	"github.com/MKhiriev/go-sub-keeper/models"
)

// purchaseRepository is the PostgreSQL-backed implementation of
// [PurchaseRepository] over the "purchases" table.
type purchaseRepository struct {
	*DB
	logger *logger.Logger
}

// NewPurchaseRepository constructs a [PurchaseRepository] backed by db.
func NewPurchaseRepository(db *DB, logger *logger.Logger) PurchaseRepository {
	logger.Debug().Msg("creating purchase repository")
	return &purchaseRepository{
		DB:     db,
		logger: logger,
	}
}

// FindPurchase returns the ownership record of purchaseToken.
//
// Error handling:
//   - no row → [ErrPurchaseNotFound].
//   - query/scan failures → wrapped [ErrExecutingQuery] / [ErrScanningRow].
func (p *purchaseRepository) FindPurchase(ctx context.Context, purchaseToken string) (models.Purchase, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindPurchaseQuery(purchaseToken)
	if err != nil {
		log.Err(err).Str("func", "*purchaseRepository.FindPurchase").Msg("failed to build query")
		return models.Purchase{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var purchase models.Purchase
	err = p.DB.QueryRowContext(ctx, query, args...).Scan(
		&purchase.PurchaseToken,
		&purchase.UserID,
		&purchase.SKU,
		&purchase.CreatedAt,
		&purchase.UpdatedAt,
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Purchase{}, ErrPurchaseNotFound
	case err != nil:
		log.Err(err).
			Str("func", "*purchaseRepository.FindPurchase").
			Bool("transient", p.classify(err) == Transient).
			Msg("failed to find purchase")
		return models.Purchase{}, p.driverError(ErrScanningRow, err)
	}

	return purchase, nil
}

// ListUserPurchases returns every purchase registered to userID. Returns an
// empty slice when the user owns nothing.
func (p *purchaseRepository) ListUserPurchases(ctx context.Context, userID string) ([]models.Purchase, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUserPurchasesQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*purchaseRepository.ListUserPurchases").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*purchaseRepository.ListUserPurchases").
			Str("user_id", userID).
			Bool("transient", p.classify(err) == Transient).
			Msg("failed to execute query for user purchases")
		return nil, p.driverError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	purchases := make([]models.Purchase, 0, 4)
	for rows.Next() {
		var purchase models.Purchase
		if err = rows.Scan(
			&purchase.PurchaseToken,
			&purchase.UserID,
			&purchase.SKU,
			&purchase.CreatedAt,
			&purchase.UpdatedAt,
		); err != nil {
			log.Err(err).
				Str("func", "*purchaseRepository.ListUserPurchases").
				Str("user_id", userID).
				Msg("failed to scan purchase row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		purchases = append(purchases, purchase)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "*purchaseRepository.ListUserPurchases").
			Str("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return purchases, nil
}

// SavePurchase upserts the ownership record.
func (p *purchaseRepository) SavePurchase(ctx context.Context, purchase models.Purchase) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSavePurchaseQuery(purchase)
	if err != nil {
		log.Err(err).Str("func", "*purchaseRepository.SavePurchase").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := p.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*purchaseRepository.SavePurchase").
			Str("user_id", purchase.UserID).
			Str("sku", purchase.SKU).
			Str("pg_code", postgresError(err)).
			Bool("transient", p.classify(err) == Transient).
			Msg("failed to upsert purchase")
		return p.driverError(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrPurchaseNotSaved
	}

	return nil
}
