package service

import (
	"context"
	"slices"

	"github.com/MKhiriev/go-sub-keeper/internal/app"
	"github.com/MKhiriev/go-sub-keeper/internal/config"
	"github.com/MKhiriev/go-sub-keeper/models"
)

type contentService struct {
	entitlements EntitlementService

	basicSKUs   []string
	premiumSKUs []string

	basicURL   string
	premiumURL string
}

// NewContentService gates basic content on basic or premium products and
// premium content on premium products only.
func NewContentService(entitlements EntitlementService, cfg config.App) ContentService {
	basic := slices.Concat(cfg.BasicSKUs, cfg.PremiumSKUs)
	slices.Sort(basic)

	return &contentService{
		entitlements: entitlements,
		basicSKUs:    slices.Compact(basic),
		premiumSKUs:  slices.Clone(cfg.PremiumSKUs),
		basicURL:     cfg.BasicContentURL,
		premiumURL:   cfg.PremiumContentURL,
	}
}

func (c *contentService) Basic(ctx context.Context, userID string) (models.ContentResource, error) {
	return c.serve(ctx, userID, c.basicSKUs, c.basicURL)
}

func (c *contentService) Premium(ctx context.Context, userID string) (models.ContentResource, error) {
	return c.serve(ctx, userID, c.premiumSKUs, c.premiumURL)
}

func (c *contentService) serve(ctx context.Context, userID string, acceptable []string, url string) (models.ContentResource, error) {
	decision, err := c.entitlements.Verify(ctx, userID, acceptable)
	if err != nil {
		return models.ContentResource{}, err
	}
	if !decision.Allowed {
		return models.ContentResource{}, app.Errorf(app.PermissionDenied, app.MsgValidSubscriptionNotFound)
	}
	return models.ContentResource{URL: url}, nil
}
