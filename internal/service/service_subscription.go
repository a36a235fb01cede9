// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/go-sub-keeper/internal/app"
	"github.com/MKhiriev/go-sub-keeper/internal/billing"
	"github.com/MKhiriev/go-sub-keeper/internal/logger"
	"github.com/MKhiriev/go-sub-keeper/internal/notify"
	"github.com/MKhiriev/go-sub-keeper/internal/store"
	"github.com/MKhiriev/go-sub-keeper/models"
)

// subscriptionService combines Play purchase state with the ownership table.
type subscriptionService struct {
	purchases store.PurchaseRepository
	play      billing.PlayClient
	notifier  notify.Notifier
	now       func() time.Time
	logger    *logger.Logger
}

// NewSubscriptionService builds the service. notifier may be nil.
func NewSubscriptionService(purchases store.PurchaseRepository, play billing.PlayClient, notifier notify.Notifier, logger *logger.Logger) SubscriptionService {
	return &subscriptionService{
		purchases: purchases,
		play:      play,
		notifier:  notifier,
		now:       time.Now,
		logger:    logger,
	}
}

func (s *subscriptionService) Status(ctx context.Context, userID string) ([]models.SubscriptionStatus, error) {
	log := logger.FromContext(ctx)

	purchases, err := s.purchases.ListUserPurchases(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*subscriptionService.Status").Str("user_id", userID).Msg("error listing purchases")
		return nil, app.Wrap(app.Internal, app.MsgInternalServerError, err)
	}

	statuses := make([]models.SubscriptionStatus, 0, len(purchases))
	for _, purchase := range purchases {
		sp, err := s.play.GetSubscription(ctx, purchase.SKU, purchase.PurchaseToken)
		if err != nil {
			log.Err(err).
				Str("func", "*subscriptionService.Status").
				Str("user_id", userID).
				Str("sku", purchase.SKU).
				Msg("error fetching purchase from billing")
			return nil, app.Wrap(app.Internal, app.MsgInternalServerError, err)
		}
		statuses = append(statuses, billing.ToSubscriptionStatus(purchase.SKU, purchase.PurchaseToken, sp, s.now()))
	}

	return statuses, nil
}

func (s *subscriptionService) Register(ctx context.Context, userID string, req models.RegisterRequest) ([]models.SubscriptionStatus, error) {
	log := logger.FromContext(ctx)

	current, err := s.verify(ctx, req)
	if err != nil {
		return nil, err
	}

	owner, err := s.purchases.FindPurchase(ctx, req.PurchaseToken)
	switch {
	case err == nil:
		if owner.UserID != userID && current.EntitlementActive {
			log.Warn().
				Str("func", "*subscriptionService.Register").
				Str("user_id", userID).
				Str("sku", req.ProductID).
				Msg("purchase already owned by another user")
			return nil, app.Errorf(app.Conflict, app.MsgPurchaseAlreadyOwned)
		}
	case errors.Is(err, store.ErrPurchaseNotFound):
	default:
		log.Err(err).Str("func", "*subscriptionService.Register").Msg("error looking up purchase owner")
		return nil, app.Wrap(app.Internal, app.MsgInternalServerError, err)
	}

	return s.assign(ctx, userID, req)
}

func (s *subscriptionService) Transfer(ctx context.Context, userID string, req models.RegisterRequest) ([]models.SubscriptionStatus, error) {
	log := logger.FromContext(ctx)

	if _, err := s.verify(ctx, req); err != nil {
		return nil, err
	}

	var previousOwner string
	owner, err := s.purchases.FindPurchase(ctx, req.PurchaseToken)
	switch {
	case err == nil:
		previousOwner = owner.UserID
	case errors.Is(err, store.ErrPurchaseNotFound):
	default:
		log.Err(err).Str("func", "*subscriptionService.Transfer").Msg("error looking up purchase owner")
		return nil, app.Wrap(app.Internal, app.MsgInternalServerError, err)
	}

	statuses, err := s.assign(ctx, userID, req)
	if err != nil {
		return nil, err
	}

	if previousOwner != "" && previousOwner != userID {
		if previous, err := s.Status(ctx, previousOwner); err == nil {
			s.push(ctx, previousOwner, previous)
		}
	}

	return statuses, nil
}

// verify checks the purchase with Play and returns its current record.
func (s *subscriptionService) verify(ctx context.Context, req models.RegisterRequest) (models.SubscriptionStatus, error) {
	if strings.TrimSpace(req.ProductID) == "" || strings.TrimSpace(req.PurchaseToken) == "" {
		return models.SubscriptionStatus{}, app.Wrap(app.InvalidArgument, app.MsgMissingPurchaseFields, ErrMissingPurchaseField)
	}

	sp, err := s.play.GetSubscription(ctx, req.ProductID, req.PurchaseToken)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*subscriptionService.verify").
			Str("sku", req.ProductID).
			Msg("purchase verification failed")
		if errors.Is(err, billing.ErrInvalidPurchase) {
			return models.SubscriptionStatus{}, app.Wrap(app.InvalidArgument, app.MsgInvalidPurchase, err)
		}
		return models.SubscriptionStatus{}, app.Wrap(app.Internal, app.MsgInternalServerError, err)
	}

	return billing.ToSubscriptionStatus(req.ProductID, req.PurchaseToken, sp, s.now()), nil
}

// assign stores userID as the owner, then returns and pushes the user's list.
func (s *subscriptionService) assign(ctx context.Context, userID string, req models.RegisterRequest) ([]models.SubscriptionStatus, error) {
	err := s.purchases.SavePurchase(ctx, models.Purchase{
		PurchaseToken: req.PurchaseToken,
		UserID:        userID,
		SKU:           req.ProductID,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*subscriptionService.assign").Msg("error saving purchase")
		return nil, app.Wrap(app.Internal, app.MsgInternalServerError, err)
	}

	statuses, err := s.Status(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.push(ctx, userID, statuses)
	return statuses, nil
}

func (s *subscriptionService) push(ctx context.Context, userID string, statuses []models.SubscriptionStatus) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, userID, models.SubscriptionStatusList{Subscriptions: statuses}); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*subscriptionService.push").
			Str("user_id", userID).
			Msg("error pushing subscription update")
	}
}
