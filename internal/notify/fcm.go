// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"firebase.google.com/go/messaging"
	"github.com/MKhiriev/go-sub-keeper/internal/logger"
	"github.com/MKhiriev/go-sub-keeper/internal/store"
	"github.com/MKhiriev/go-sub-keeper/models"
)

// Messenger is the part of *messaging.Client used here.
type Messenger interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
	SendDryRun(ctx context.Context, message *messaging.Message) (string, error)
}

// FCMNotifier sends data messages to every device token registered to a user.
type FCMNotifier struct {
	messenger Messenger
	tokens    store.DeviceTokenRepository
	logger    *logger.Logger
}

func NewFCMNotifier(messenger Messenger, tokens store.DeviceTokenRepository, logger *logger.Logger) *FCMNotifier {
	return &FCMNotifier{messenger: messenger, tokens: tokens, logger: logger}
}

// Notify delivers list to each of the user's devices. Every token is tried;
// the returned error joins the individual failures.
func (n *FCMNotifier) Notify(ctx context.Context, userID string, list models.SubscriptionStatusList) error {
	tokens, err := n.tokens.ListDeviceTokens(ctx, userID)
	if err != nil {
		return fmt.Errorf("list device tokens: %w", err)
	}
	if len(tokens) == 0 {
		return nil
	}

	data, err := EncodeStatusPayload(list)
	if err != nil {
		return err
	}

	var errs []error
	for _, token := range tokens {
		_, err = n.messenger.Send(ctx, &messaging.Message{
			Token: token,
			Data:  data,
			Android: &messaging.AndroidConfig{
				Priority: "high",
			},
		})
		if err != nil {
			n.logger.Err(err).
				Str("func", "*FCMNotifier.Notify").
				Str("user_id", userID).
				Msg("error sending data message")
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, errors.Join(errs...))
	}
	return nil
}

// FCMTokenValidator validates a token with a dry-run send.
type FCMTokenValidator struct {
	messenger Messenger
}

func NewFCMTokenValidator(messenger Messenger) *FCMTokenValidator {
	return &FCMTokenValidator{messenger: messenger}
}

func (v *FCMTokenValidator) ValidateToken(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return ErrEmptyToken
	}

	_, err := v.messenger.SendDryRun(ctx, &messaging.Message{
		Token: token,
		Data:  map[string]string{"dryRun": "true"},
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	return nil
}
