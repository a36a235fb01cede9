// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/MKhiriev/go-sub-keeper/internal/app"
	"github.com/MKhiriev/go-sub-keeper/internal/logger"
	"github.com/MKhiriev/go-sub-keeper/internal/utils"
	"github.com/MKhiriev/go-sub-keeper/models"
)

func (h *Handler) subscriptionStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		writeError(w, r, "*Handler.subscriptionStatus", ErrNoUserInContext)
		return
	}

	statuses, err := h.services.SubscriptionService.Status(ctx, userID)
	if err != nil {
		writeError(w, r, "*Handler.subscriptionStatus", err)
		return
	}

	utils.WriteJSON(w, models.SubscriptionStatusList{Subscriptions: statuses}, http.StatusOK)
}

// registerSubscription also serves device token registration: a body carrying
// instanceId is routed to the device registry.
func (h *Handler) registerSubscription(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		writeError(w, r, "*Handler.registerSubscription", ErrNoUserInContext)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, r, "*Handler.registerSubscription", app.Wrap(app.InvalidArgument, app.MsgInvalidJSON, err))
		return
	}

	var probe struct {
		InstanceID *string `json:"instanceId"`
	}
	if err = json.Unmarshal(body, &probe); err == nil && probe.InstanceID != nil {
		log.Debug().Msg("instanceId body on subscription_register_v2, registering device token")
		r.Body = io.NopCloser(bytes.NewReader(body))
		h.registerInstanceID(w, r)
		return
	}

	req, ok := decodeRegisterRequest(w, r, bytes.NewReader(body))
	if !ok {
		return
	}

	statuses, err := h.services.SubscriptionService.Register(ctx, userID, req)
	if err != nil {
		writeError(w, r, "*Handler.registerSubscription", err)
		return
	}

	utils.WriteJSON(w, models.SubscriptionStatusList{Subscriptions: statuses}, http.StatusOK)
}

func (h *Handler) transferSubscription(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		writeError(w, r, "*Handler.transferSubscription", ErrNoUserInContext)
		return
	}

	req, ok := decodeRegisterRequest(w, r, r.Body)
	if !ok {
		return
	}

	statuses, err := h.services.SubscriptionService.Transfer(ctx, userID, req)
	if err != nil {
		writeError(w, r, "*Handler.transferSubscription", err)
		return
	}

	utils.WriteJSON(w, models.SubscriptionStatusList{Subscriptions: statuses}, http.StatusOK)
}

func decodeRegisterRequest(w http.ResponseWriter, r *http.Request, body io.Reader) (models.RegisterRequest, bool) {
	var req models.RegisterRequest
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		writeError(w, r, "decodeRegisterRequest", app.Wrap(app.InvalidArgument, app.MsgInvalidJSON, err))
		return models.RegisterRequest{}, false
	}
	return req, true
}
