package notify

import "errors"

var (
	ErrEmptyToken      = errors.New("empty device token")
	ErrInvalidToken    = errors.New("device token rejected by messaging")
	ErrDeliveryFailed  = errors.New("push delivery failed")
	ErrEmptyChannel    = errors.New("empty push channel")
	ErrEmptyRedisURL   = errors.New("empty redis url")
	ErrInvalidEnvelope = errors.New("invalid push envelope")
)
