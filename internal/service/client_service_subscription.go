// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-sub-keeper/internal/adapter"
	"github.com/MKhiriev/go-sub-keeper/internal/cache"
	"github.com/MKhiriev/go-sub-keeper/internal/dispatch"
	"github.com/MKhiriev/go-sub-keeper/internal/logger"
	"github.com/MKhiriev/go-sub-keeper/internal/notify"
	"github.com/MKhiriev/go-sub-keeper/internal/pending"
	"github.com/MKhiriev/go-sub-keeper/models"
)

type clientSubscriptionService struct {
	adapter adapter.ServerAdapter
	cache   *cache.SubscriptionCache
	pending *pending.Counter

	contentMu sync.RWMutex
	content   map[models.ContentTier]models.ContentResource

	failureMu sync.Mutex
	failure   *OperationError

	logger *logger.Logger
}

func NewClientSubscriptionService(serverAdapter adapter.ServerAdapter, subscriptions *cache.SubscriptionCache, counter *pending.Counter, logger *logger.Logger) ClientSubscriptionService {
	return &clientSubscriptionService{
		adapter: serverAdapter,
		cache:   subscriptions,
		pending: counter,
		content: make(map[models.ContentTier]models.ContentResource),
		logger:  logger,
	}
}

func (s *clientSubscriptionService) RefreshStatus(ctx context.Context) <-chan struct{} {
	return dispatch.Go(ctx, s.pending, s.logger, dispatch.Request[models.SubscriptionStatusList]{
		Method:    "refreshStatus",
		Call:      s.adapter.FetchSubscriptionStatus,
		OnSuccess: s.replace(ctx, "refreshStatus"),
		OnError:   s.recordFailure("refreshStatus", nil),
	})
}

func (s *clientSubscriptionService) Register(ctx context.Context, productID, purchaseToken string) <-chan struct{} {
	const method = "registerSubscription"

	return dispatch.Go(ctx, s.pending, s.logger, dispatch.Request[models.SubscriptionStatusList]{
		Method: method,
		Call: func(ctx context.Context) (models.SubscriptionStatusList, error) {
			return s.adapter.RegisterSubscription(ctx, productID, purchaseToken)
		},
		OnSuccess: s.replace(ctx, method),
		OnError: s.recordFailure(method, func(code int, message string) {
			if dispatch.OutcomeOf(code) == dispatch.Conflict {
				// the server state did not change; record the conflict locally
				if err := s.cache.Merge(ctx, models.NewConflictStatus(productID, purchaseToken)); err != nil {
					s.logger.Err(err).Str("func", "*clientSubscriptionService.Register").Msg("error caching conflict record")
				}
			}
		}),
	})
}

func (s *clientSubscriptionService) Transfer(ctx context.Context, productID, purchaseToken string) <-chan struct{} {
	return dispatch.Go(ctx, s.pending, s.logger, dispatch.Request[models.SubscriptionStatusList]{
		Method: "transferSubscription",
		Call: func(ctx context.Context) (models.SubscriptionStatusList, error) {
			return s.adapter.TransferSubscription(ctx, productID, purchaseToken)
		},
		OnSuccess: s.replace(ctx, "transferSubscription"),
		OnError:   s.recordFailure("transferSubscription", nil),
	})
}

func (s *clientSubscriptionService) FetchBasicContent(ctx context.Context) <-chan struct{} {
	return s.fetchContent(ctx, models.ContentTierBasic, s.adapter.FetchBasicContent)
}

func (s *clientSubscriptionService) FetchPremiumContent(ctx context.Context) <-chan struct{} {
	return s.fetchContent(ctx, models.ContentTierPremium, s.adapter.FetchPremiumContent)
}

func (s *clientSubscriptionService) fetchContent(ctx context.Context, tier models.ContentTier, call dispatch.Call[models.ContentResource]) <-chan struct{} {
	method := fmt.Sprintf("fetch%sContent", tier)
	return dispatch.Go(ctx, s.pending, s.logger, dispatch.Request[models.ContentResource]{
		Method: method,
		Call:   call,
		OnSuccess: func(resource models.ContentResource) {
			s.contentMu.Lock()
			s.content[tier] = resource
			s.contentMu.Unlock()
		},
		OnError: s.recordFailure(method, nil),
	})
}

func (s *clientSubscriptionService) Content(tier models.ContentTier) (models.ContentResource, bool) {
	s.contentMu.RLock()
	defer s.contentMu.RUnlock()
	resource, ok := s.content[tier]
	return resource, ok
}

func (s *clientSubscriptionService) RegisterDevice(ctx context.Context, token string) <-chan struct{} {
	return dispatch.Go(ctx, s.pending, s.logger, dispatch.Request[struct{}]{
		Method: "registerInstanceId",
		Call: func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.adapter.RegisterDeviceToken(ctx, token)
		},
		OnError: s.recordFailure("registerInstanceId", nil),
	})
}

func (s *clientSubscriptionService) UnregisterDevice(ctx context.Context, token string) <-chan struct{} {
	return dispatch.Go(ctx, s.pending, s.logger, dispatch.Request[struct{}]{
		Method: "unregisterInstanceId",
		Call: func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.adapter.UnregisterDeviceToken(ctx, token)
		},
		OnError: s.recordFailure("unregisterInstanceId", nil),
	})
}

func (s *clientSubscriptionService) OnDeviceTokenRefreshed(ctx context.Context, token string) <-chan struct{} {
	s.logger.Info().Msg("device token refreshed")
	return s.RegisterDevice(ctx, token)
}

func (s *clientSubscriptionService) OnPushPayloadReceived(ctx context.Context, data map[string]string) error {
	log := s.logger.With().Str("func", "*clientSubscriptionService.OnPushPayloadReceived").Logger()

	raw, ok := data[notify.CurrentStatusKey]
	if !ok {
		log.Info().Msg("push payload without subscription status ignored")
		return ErrNoStatusInPayload
	}

	var list *models.SubscriptionStatusList
	if err := json.Unmarshal([]byte(raw), &list); err != nil || list == nil {
		log.Error().AnErr("error", err).Msg("unparseable subscription status in push payload")
		return ErrUnparseablePayload
	}

	return s.cache.Replace(ctx, list.Subscriptions)
}

func (s *clientSubscriptionService) LastFailure() error {
	s.failureMu.Lock()
	defer s.failureMu.Unlock()
	if s.failure == nil {
		return nil
	}
	return s.failure
}

func (s *clientSubscriptionService) Busy() bool {
	return s.pending.Busy()
}

func (s *clientSubscriptionService) ObserveBusy() (bool, <-chan bool, func()) {
	return s.pending.Observe()
}

func (s *clientSubscriptionService) Subscriptions() []models.SubscriptionStatus {
	return s.cache.Snapshot()
}

func (s *clientSubscriptionService) ObserveSubscriptions() ([]models.SubscriptionStatus, <-chan []models.SubscriptionStatus, func()) {
	return s.cache.Observe()
}

// replace returns a success handler adopting the server's list verbatim.
func (s *clientSubscriptionService) replace(ctx context.Context, method string) func(models.SubscriptionStatusList) {
	return func(list models.SubscriptionStatusList) {
		if err := s.cache.Replace(ctx, list.Subscriptions); err != nil {
			s.logger.Err(err).Str("method", method).Msg("error storing subscription list")
		}
	}
}

// recordFailure returns an error handler that remembers the outcome for
// LastFailure, runs next when set and logs.
func (s *clientSubscriptionService) recordFailure(method string, next dispatch.ErrorHandler) dispatch.ErrorHandler {
	logError := dispatch.LogError(s.logger, method)
	return func(code int, message string) {
		s.failureMu.Lock()
		s.failure = &OperationError{Method: method, Code: code, Message: message}
		s.failureMu.Unlock()

		if next != nil {
			next(code, message)
		}
		logError(code, message)
	}
}
