package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-sub-keeper/internal/app"
	"github.com/MKhiriev/go-sub-keeper/internal/logger"
	"github.com/MKhiriev/go-sub-keeper/internal/notify"
	"github.com/MKhiriev/go-sub-keeper/internal/store"
)

type deviceTokenService struct {
	tokens    store.DeviceTokenRepository
	validator notify.TokenValidator
	logger    *logger.Logger
}

// NewDeviceTokenService builds the registry. Without a validator every
// registration is rejected, since no token can pass the dry run.
func NewDeviceTokenService(tokens store.DeviceTokenRepository, validator notify.TokenValidator, logger *logger.Logger) DeviceTokenService {
	return &deviceTokenService{tokens: tokens, validator: validator, logger: logger}
}

// Register validates token with a dry-run send before storing it.
func (d *deviceTokenService) Register(ctx context.Context, userID, token string) error {
	log := logger.FromContext(ctx)

	token = strings.TrimSpace(token)
	if token == "" {
		return app.Wrap(app.InvalidArgument, app.MsgInvalidInstanceID, ErrEmptyDeviceToken)
	}

	if d.validator == nil {
		log.Error().Str("func", "*deviceTokenService.Register").Str("user_id", userID).Msg("no token validator, registration rejected")
		return app.Wrap(app.Internal, app.MsgInternalServerError, ErrNoTokenValidator)
	}

	if err := d.validator.ValidateToken(ctx, token); err != nil {
		log.Err(err).Str("func", "*deviceTokenService.Register").Str("user_id", userID).Msg("device token failed dry run")
		return app.Wrap(app.InvalidArgument, app.MsgInvalidInstanceID, err)
	}

	if err := d.tokens.AddDeviceToken(ctx, userID, token); err != nil {
		log.Err(err).Str("func", "*deviceTokenService.Register").Str("user_id", userID).Msg("error storing device token")
		return app.Wrap(app.Internal, app.MsgInternalServerError, err)
	}

	return nil
}

func (d *deviceTokenService) Unregister(ctx context.Context, userID, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return app.Wrap(app.InvalidArgument, app.MsgInvalidInstanceID, ErrEmptyDeviceToken)
	}

	if err := d.tokens.RemoveDeviceToken(ctx, userID, token); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*deviceTokenService.Unregister").
			Str("user_id", userID).
			Msg("error removing device token")
		return app.Wrap(app.Internal, app.MsgInternalServerError, err)
	}

	return nil
}
