package service

import (
	"context"
	"sync"
	"time"
)

const defaultRefreshInterval = 15 * time.Minute

type clientRefreshJob struct {
	subscriptions ClientSubscriptionService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientRefreshJob creates a job that calls RefreshStatus on a ticker. The
// job is idle until Start is called.
func NewClientRefreshJob(subscriptions ClientSubscriptionService) ClientRefreshJob {
	return &clientRefreshJob{subscriptions: subscriptions}
}

func (j *clientRefreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				select {
				case <-j.subscriptions.RefreshStatus(jobCtx):
				case <-jobCtx.Done():
					return
				}
			}
		}
	}()
}

// Stop is a no-op when the job is not running.
func (j *clientRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
