package cache

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-sub-keeper/internal/logger"
	"github.com/MKhiriev/go-sub-keeper/internal/store"
	"github.com/MKhiriev/go-sub-keeper/models"
)

// SubscriptionCache is the single-writer store of the client's subscription
// records. Every update runs under one mutex: it reads the current list,
// computes the next one and commits it before the next update starts.
//
// Committed lists are written through to repo when one is configured and
// broadcast to observers.
type SubscriptionCache struct {
	mu      sync.Mutex
	records []models.SubscriptionStatus

	nextID    int
	observers map[int]chan []models.SubscriptionStatus

	repo   store.LocalSubscriptionRepository
	logger *logger.Logger
}

// NewSubscriptionCache creates an empty cache. repo may be nil for a purely
// in-memory cache.
func NewSubscriptionCache(repo store.LocalSubscriptionRepository, log *logger.Logger) *SubscriptionCache {
	return &SubscriptionCache{
		records:   []models.SubscriptionStatus{},
		observers: make(map[int]chan []models.SubscriptionStatus),
		repo:      repo,
		logger:    log,
	}
}

// Load replaces the in-memory list with the persisted one without writing it
// back. It is a no-op without a repository.
func (c *SubscriptionCache) Load(ctx context.Context) error {
	if c.repo == nil {
		return nil
	}

	records, err := c.repo.LoadSubscriptions(ctx)
	if err != nil {
		return fmt.Errorf("load cached subscriptions: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.commit(records)
	return nil
}

// Snapshot returns a copy of the current list.
func (c *SubscriptionCache) Snapshot() []models.SubscriptionStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return clone(c.records)
}

// Replace discards the current list and adopts records verbatim. A nil or
// empty records is the valid "owns nothing" state.
func (c *SubscriptionCache) Replace(ctx context.Context, records []models.SubscriptionStatus) error {
	return c.Update(ctx, func([]models.SubscriptionStatus) []models.SubscriptionStatus {
		return records
	})
}

// Merge applies [InsertOrUpdate] to the current list.
func (c *SubscriptionCache) Merge(ctx context.Context, incoming models.SubscriptionStatus) error {
	return c.Update(ctx, func(current []models.SubscriptionStatus) []models.SubscriptionStatus {
		return InsertOrUpdate(current, incoming)
	})
}

// Update commits fn(current) as the new list. fn receives a private copy.
//
// The new list stays in memory and reaches observers even when persisting it
// fails; the persistence error is logged and returned.
func (c *SubscriptionCache) Update(ctx context.Context, fn func(current []models.SubscriptionStatus) []models.SubscriptionStatus) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := fn(clone(c.records))
	c.commit(next)

	if c.repo == nil {
		return nil
	}
	if err := c.repo.SaveSubscriptions(ctx, clone(c.records)); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*SubscriptionCache.Update").
			Int("records", len(c.records)).
			Msg("error persisting subscription cache")
		return fmt.Errorf("persist subscriptions: %w", err)
	}

	return nil
}

// Observe returns the current list and a channel that receives each later
// committed list. Only the latest list is buffered. Call cancel to stop
// receiving; the channel is closed afterwards.
func (c *SubscriptionCache) Observe() (current []models.SubscriptionStatus, updates <-chan []models.SubscriptionStatus, cancel func()) {
	ch := make(chan []models.SubscriptionStatus, 1)

	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.observers[id] = ch
	current = clone(c.records)
	c.mu.Unlock()

	var once sync.Once
	cancel = func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.observers, id)
			c.mu.Unlock()
			close(ch)
		})
	}

	return current, ch, cancel
}

// commit must be called with mu held.
func (c *SubscriptionCache) commit(next []models.SubscriptionStatus) {
	c.records = clone(next)

	for _, ch := range c.observers {
		select {
		case <-ch:
		default:
		}
		ch <- clone(c.records)
	}
}
