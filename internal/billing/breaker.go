package billing

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sub-keeper/internal/config"
	"github.com/MKhiriev/go-sub-keeper/internal/logger"
	"github.com/sony/gobreaker/v2"
	"google.golang.org/api/androidpublisher/v3"
)

// breakerPlayClient fails fast while Play keeps failing. Rejected purchases
// count as successful calls so that bad tokens cannot open the breaker.
type breakerPlayClient struct {
	next    PlayClient
	breaker *gobreaker.CircuitBreaker[*androidpublisher.SubscriptionPurchase]
}

// WithCircuitBreaker wraps next in a circuit breaker configured from cfg.
func WithCircuitBreaker(next PlayClient, cfg config.Billing, log *logger.Logger) PlayClient {
	settings := gobreaker.Settings{
		Name:        "google-play",
		MaxRequests: cfg.BreakerMaxRequests,
		Interval:    cfg.BreakerInterval,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.BreakerFailureThreshold
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrInvalidPurchase) || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state changed")
		},
	}

	return &breakerPlayClient{
		next:    next,
		breaker: gobreaker.NewCircuitBreaker[*androidpublisher.SubscriptionPurchase](settings),
	}
}

func (b *breakerPlayClient) GetSubscription(ctx context.Context, sku, purchaseToken string) (*androidpublisher.SubscriptionPurchase, error) {
	purchase, err := b.breaker.Execute(func() (*androidpublisher.SubscriptionPurchase, error) {
		return b.next.GetSubscription(ctx, sku, purchaseToken)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: %w", ErrBillingUnavailable, err)
	}

	return purchase, err
}
