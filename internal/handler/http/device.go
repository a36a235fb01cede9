package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-sub-keeper/internal/app"
	"github.com/MKhiriev/go-sub-keeper/internal/utils"
	"github.com/MKhiriev/go-sub-keeper/models"
)

var statusOK = models.StatusResponse{Status: "OK"}

func (h *Handler) registerInstanceID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		writeError(w, r, "*Handler.registerInstanceID", ErrNoUserInContext)
		return
	}

	req, ok := decodeDeviceTokenRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.DeviceTokenService.Register(ctx, userID, req.InstanceID); err != nil {
		writeError(w, r, "*Handler.registerInstanceID", err)
		return
	}

	utils.WriteJSON(w, statusOK, http.StatusOK)
}

func (h *Handler) unregisterInstanceID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		writeError(w, r, "*Handler.unregisterInstanceID", ErrNoUserInContext)
		return
	}

	req, ok := decodeDeviceTokenRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.DeviceTokenService.Unregister(ctx, userID, req.InstanceID); err != nil {
		writeError(w, r, "*Handler.unregisterInstanceID", err)
		return
	}

	utils.WriteJSON(w, statusOK, http.StatusOK)
}

func decodeDeviceTokenRequest(w http.ResponseWriter, r *http.Request) (models.DeviceTokenRequest, bool) {
	var req models.DeviceTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, "decodeDeviceTokenRequest", app.Wrap(app.InvalidArgument, app.MsgInvalidJSON, err))
		return models.DeviceTokenRequest{}, false
	}
	return req, true
}
