package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrPurchaseNotFound is returned when no ownership record exists for a
	// purchase token.
	ErrPurchaseNotFound = errors.New("purchase was not found")

	// ErrPurchaseNotSaved is returned when an upsert of an ownership record
	// completes without error but affects no rows.
	ErrPurchaseNotSaved = errors.New("purchase was not saved")

	// ErrStorageUnavailable marks a failure caused by a lost or refused
	// database connection rather than by the statement itself.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a
	// transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing a transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a result set fails midway.
	ErrScanningRows = errors.New("failed to scan rows")
)
