package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-sub-keeper/internal/config"
	"github.com/MKhiriev/go-sub-keeper/internal/logger"
	"github.com/MKhiriev/go-sub-keeper/internal/utils"
	"github.com/MKhiriev/go-sub-keeper/models"
	"github.com/go-resty/resty/v2"
)

// IDTokenHeader carries the caller's identity credential.
const IDTokenHeader = "X-FireIDToken"

const (
	pathSubscriptionStatus   = "/subscription_status_v2"
	pathSubscriptionRegister = "/subscription_register_v2"
	pathSubscriptionTransfer = "/subscription_transfer_v2"
	pathContentBasic         = "/content_basic_v2"
	pathContentPremium       = "/content_premium_v2"
	pathInstanceIDRegister   = "/instanceId_register_v2"
	pathInstanceIDUnregister = "/instanceId_unregister_v2"
)

type httpServerAdapter struct {
	client  *utils.HTTPClient
	idToken string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client:  utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		idToken: strings.TrimSpace(adapterCfg.IDToken),
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidAddress
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) FetchSubscriptionStatus(ctx context.Context) (models.SubscriptionStatusList, error) {
	var list models.SubscriptionStatusList

	resp, err := h.authedRequest(ctx).
		SetResult(&list).
		Get(pathSubscriptionStatus)
	if err != nil {
		return models.SubscriptionStatusList{}, fmt.Errorf("subscription status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SubscriptionStatusList{}, err
	}

	return list, nil
}

func (h *httpServerAdapter) RegisterSubscription(ctx context.Context, productID, purchaseToken string) (models.SubscriptionStatusList, error) {
	return h.putPurchase(ctx, pathSubscriptionRegister, productID, purchaseToken)
}

func (h *httpServerAdapter) TransferSubscription(ctx context.Context, productID, purchaseToken string) (models.SubscriptionStatusList, error) {
	return h.putPurchase(ctx, pathSubscriptionTransfer, productID, purchaseToken)
}

func (h *httpServerAdapter) putPurchase(ctx context.Context, path, productID, purchaseToken string) (models.SubscriptionStatusList, error) {
	var list models.SubscriptionStatusList

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.RegisterRequest{ProductID: productID, PurchaseToken: purchaseToken}).
		SetResult(&list).
		Put(path)
	if err != nil {
		return models.SubscriptionStatusList{}, fmt.Errorf("%s request: %w", strings.TrimPrefix(path, "/"), err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SubscriptionStatusList{}, err
	}

	return list, nil
}

func (h *httpServerAdapter) FetchBasicContent(ctx context.Context) (models.ContentResource, error) {
	return h.getContent(ctx, pathContentBasic)
}

func (h *httpServerAdapter) FetchPremiumContent(ctx context.Context) (models.ContentResource, error) {
	return h.getContent(ctx, pathContentPremium)
}

func (h *httpServerAdapter) getContent(ctx context.Context, path string) (models.ContentResource, error) {
	var content models.ContentResource

	resp, err := h.authedRequest(ctx).
		SetResult(&content).
		Get(path)
	if err != nil {
		return models.ContentResource{}, fmt.Errorf("%s request: %w", strings.TrimPrefix(path, "/"), err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ContentResource{}, err
	}

	return content, nil
}

func (h *httpServerAdapter) RegisterDeviceToken(ctx context.Context, token string) error {
	return h.putDeviceToken(ctx, pathInstanceIDRegister, token)
}

func (h *httpServerAdapter) UnregisterDeviceToken(ctx context.Context, token string) error {
	return h.putDeviceToken(ctx, pathInstanceIDUnregister, token)
}

func (h *httpServerAdapter) putDeviceToken(ctx context.Context, path, token string) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.DeviceTokenRequest{InstanceID: token}).
		Put(path)
	if err != nil {
		return fmt.Errorf("%s request: %w", strings.TrimPrefix(path, "/"), err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.idToken != "" {
		req.SetHeader(IDTokenHeader, h.idToken)
	}
	return req
}
