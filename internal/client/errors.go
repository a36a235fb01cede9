package client

import "errors"

var (
	// ErrTimedOut is returned when an operation does not complete within
	// the --timeout window.
	ErrTimedOut = errors.New("operation timed out")

	// ErrContentUnavailable is returned when a content fetch finished
	// without storing a location, usually because the server denied it.
	ErrContentUnavailable = errors.New("content not available, see logs for the server response")

	ErrUnknownTier = errors.New("unknown content tier, expected basic or premium")
)
