package service

import (
	"context"
	"slices"

	"github.com/MKhiriev/go-sub-keeper/internal/app"
	"github.com/MKhiriev/go-sub-keeper/internal/logger"
	"github.com/MKhiriev/go-sub-keeper/models"
)

type entitlementService struct {
	subscriptions SubscriptionService
}

func NewEntitlementService(subscriptions SubscriptionService) EntitlementService {
	return &entitlementService{subscriptions: subscriptions}
}

func (e *entitlementService) Verify(ctx context.Context, userID string, acceptable []string) (models.EntitlementDecision, error) {
	statuses, err := e.subscriptions.Status(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*entitlementService.Verify").
			Str("user_id", userID).
			Msg("entitlement check failed closed")
		return models.EntitlementDecision{}, app.Wrap(app.Internal, app.MsgInternalServerError, err)
	}

	for i := range statuses {
		if statuses[i].EntitlementActive && slices.Contains(acceptable, statuses[i].ProductID) {
			matched := statuses[i]
			return models.EntitlementDecision{Allowed: true, Matched: &matched}, nil
		}
	}

	return models.EntitlementDecision{}, nil
}
