// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package pending tracks in-flight network operations and broadcasts a
// derived "busy" signal (busy = count > 0) to any number of observers.
package pending

import (
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-sub-keeper/internal/logger"
)

// Counter is a process-wide in-flight operation counter.
//
// The count itself is an atomic integer. The busy signal is recomputed from
// the latest count on every mutation while holding the broadcast lock, so the
// last published value always matches the count after the last mutation even
// when increments and decrements race.
//
// A negative count is a caller bug (a decrement without a matching
// increment). It is logged, counted in Anomalies and forces busy to false.
type Counter struct {
	count     atomic.Int64
	anomalies atomic.Int64

	mu          sync.Mutex
	busy        bool
	nextID      int
	subscribers map[int]chan bool

	logger *logger.Logger
}

// NewCounter creates an idle Counter.
func NewCounter(log *logger.Logger) *Counter {
	return &Counter{
		subscribers: make(map[int]chan bool),
		logger:      log,
	}
}

// Increment registers the start of an operation.
func (c *Counter) Increment() {
	n := c.count.Add(1)
	if n <= 0 {
		c.reportAnomaly("unexpectedly low request count after new request", n)
	}
	c.publish()
}

// Decrement registers the completion of an operation.
func (c *Counter) Decrement() {
	n := c.count.Add(-1)
	if n < 0 {
		c.reportAnomaly("unexpectedly negative request count", n)
	}
	c.publish()
}

// Count returns the current raw count.
func (c *Counter) Count() int64 {
	return c.count.Load()
}

// Anomalies returns how many impossible counts were observed.
func (c *Counter) Anomalies() int64 {
	return c.anomalies.Load()
}

// Busy returns the current busy signal.
func (c *Counter) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

// Observe returns the current busy signal and a channel that receives every
// later change. The channel holds only the latest value, so a slow reader
// skips intermediate states but never blocks a writer. Call cancel to stop
// receiving; the channel is closed afterwards.
func (c *Counter) Observe() (current bool, updates <-chan bool, cancel func()) {
	ch := make(chan bool, 1)

	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.subscribers[id] = ch
	current = c.busy
	c.mu.Unlock()

	var once sync.Once
	cancel = func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.subscribers, id)
			c.mu.Unlock()
			close(ch)
		})
	}

	return current, ch, cancel
}

func (c *Counter) publish() {
	c.mu.Lock()
	defer c.mu.Unlock()

	busy := c.count.Load() > 0
	if busy == c.busy {
		return
	}
	c.busy = busy

	for _, ch := range c.subscribers {
		offerLatest(ch, busy)
	}
}

func (c *Counter) reportAnomaly(msg string, n int64) {
	c.anomalies.Add(1)
	c.logger.Warn().
		Str("func", "*Counter.reportAnomaly").
		Int64("count", n).
		Msg(msg)
}

// offerLatest replaces whatever is buffered in ch with v. Callers hold the
// lock that serializes all senders, so the send after draining never blocks.
func offerLatest[T any](ch chan T, v T) {
	select {
	case <-ch:
	default:
	}
	ch <- v
}
