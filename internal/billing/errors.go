package billing

import "errors"

var (
	// ErrInvalidPurchase is returned when Play rejects the token or SKU.
	ErrInvalidPurchase = errors.New("purchase not recognised by billing")
	// ErrBillingUnavailable is returned for upstream failures, including an
	// open circuit breaker.
	ErrBillingUnavailable = errors.New("billing source unavailable")
	ErrEmptyPackageName   = errors.New("empty package name")
)
