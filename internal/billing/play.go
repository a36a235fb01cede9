package billing

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-sub-keeper/internal/config"
	"github.com/MKhiriev/go-sub-keeper/internal/logger"
	"google.golang.org/api/androidpublisher/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

type playClient struct {
	subscriptions *androidpublisher.PurchasesSubscriptionsService
	packageName   string
	logger        *logger.Logger
}

// NewPlayClient builds a [PlayClient] over the Android Publisher API. Without a
// service account file application default credentials are used.
func NewPlayClient(ctx context.Context, cfg config.Billing, logger *logger.Logger) (PlayClient, error) {
	packageName := strings.TrimSpace(cfg.PackageName)
	if packageName == "" {
		return nil, ErrEmptyPackageName
	}

	opts := []option.ClientOption{option.WithScopes(androidpublisher.AndroidpublisherScope)}
	if cfg.ServiceAccountFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.ServiceAccountFile))
	}

	svc, err := androidpublisher.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("androidpublisher.NewService: %w", err)
	}

	return &playClient{
		subscriptions: svc.Purchases.Subscriptions,
		packageName:   packageName,
		logger:        logger,
	}, nil
}

func (p *playClient) GetSubscription(ctx context.Context, sku, purchaseToken string) (*androidpublisher.SubscriptionPurchase, error) {
	purchase, err := p.subscriptions.Get(p.packageName, sku, purchaseToken).
		Context(ctx).
		Do()
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*playClient.GetSubscription").
			Str("sku", sku).
			Msg("google subscriptions.get failed")
		return nil, classifyPlayError(err)
	}

	return purchase, nil
}

// classifyPlayError separates a rejected purchase (4xx) from upstream trouble.
func classifyPlayError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) &&
		apiErr.Code >= http.StatusBadRequest && apiErr.Code < http.StatusInternalServerError &&
		apiErr.Code != http.StatusTooManyRequests {
		return fmt.Errorf("%w: %w", ErrInvalidPurchase, err)
	}

	return fmt.Errorf("%w: %w", ErrBillingUnavailable, err)
}
