package service

import "errors"

var (
	ErrInvalidIDToken       = errors.New("invalid identity token")
	ErrUnknownIdentityMode  = errors.New("unknown identity mode")
	ErrNoIDTokenVerifier    = errors.New("firebase identity mode requires a token verifier")
	ErrMissingPurchaseField = errors.New("missing productId or purchaseToken")
	ErrEmptyDeviceToken     = errors.New("empty device token")
	ErrNoTokenValidator     = errors.New("device token validator unavailable")
	ErrNoTokenSignKey       = errors.New("token sign key is required")
)
