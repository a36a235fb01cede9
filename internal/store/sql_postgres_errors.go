package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells a lost connection apart from a query that will
// never succeed.
type ErrorClassification int

const (
	// Permanent covers constraint violations, bad data, schema errors and
	// anything that is not a postgres error.
	Permanent ErrorClassification = iota

	// Transient covers connection loss, rollbacks (serialization failures,
	// deadlocks) and a server that is starting up or shutting down.
	Transient
)

// PostgresErrorClassifier implements [ErrorClassificator] over pgconn error
// codes.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return Permanent
	}
	return ClassifyPgError(pgErr)
}

// ClassifyPgError classifies by SQLSTATE class: 08, 40 and 57 are transient.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch {
	case pgerrcode.IsConnectionException(pgErr.Code),
		pgerrcode.IsTransactionRollback(pgErr.Code),
		pgerrcode.IsOperatorIntervention(pgErr.Code):
		return Transient
	default:
		return Permanent
	}
}
