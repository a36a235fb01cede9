package service

import (
	"github.com/MKhiriev/go-sub-keeper/internal/adapter"
	"github.com/MKhiriev/go-sub-keeper/internal/cache"
	"github.com/MKhiriev/go-sub-keeper/internal/logger"
	"github.com/MKhiriev/go-sub-keeper/internal/pending"
	"github.com/MKhiriev/go-sub-keeper/internal/store"
)

type ClientServices struct {
	SubscriptionService ClientSubscriptionService
	RefreshJob          ClientRefreshJob

	Cache   *cache.SubscriptionCache
	Pending *pending.Counter
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	subscriptionCache := cache.NewSubscriptionCache(storages.SubscriptionRepository, logger)
	counter := pending.NewCounter(logger)
	subscriptions := NewClientSubscriptionService(serverAdapter, subscriptionCache, counter, logger)

	return &ClientServices{
		SubscriptionService: subscriptions,
		RefreshJob:          NewClientRefreshJob(subscriptions),
		Cache:               subscriptionCache,
		Pending:             counter,
	}
}
