package notify

import (
	"context"

	"github.com/MKhiriev/go-sub-keeper/internal/logger"
	"github.com/MKhiriev/go-sub-keeper/models"
)

// Fanout runs every configured notifier. Failures are logged and swallowed:
// a push is best effort and never fails the request that triggered it.
type Fanout struct {
	notifiers []Notifier
	logger    *logger.Logger
}

// NewFanout skips nil notifiers.
func NewFanout(logger *logger.Logger, notifiers ...Notifier) *Fanout {
	f := &Fanout{logger: logger}
	for _, n := range notifiers {
		if n != nil {
			f.notifiers = append(f.notifiers, n)
		}
	}
	return f
}

func (f *Fanout) Notify(ctx context.Context, userID string, list models.SubscriptionStatusList) error {
	for _, n := range f.notifiers {
		if err := n.Notify(ctx, userID, list); err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "*Fanout.Notify").
				Str("user_id", userID).
				Msg("push notification failed")
		}
	}
	return nil
}
