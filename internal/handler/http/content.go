package http

import (
	"net/http"

	"github.com/MKhiriev/go-sub-keeper/internal/utils"
)

func (h *Handler) contentBasic(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		writeError(w, r, "*Handler.contentBasic", ErrNoUserInContext)
		return
	}

	resource, err := h.services.ContentService.Basic(ctx, userID)
	if err != nil {
		writeError(w, r, "*Handler.contentBasic", err)
		return
	}

	utils.WriteJSON(w, resource, http.StatusOK)
}

func (h *Handler) contentPremium(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		writeError(w, r, "*Handler.contentPremium", ErrNoUserInContext)
		return
	}

	resource, err := h.services.ContentService.Premium(ctx, userID)
	if err != nil {
		writeError(w, r, "*Handler.contentPremium", err)
		return
	}

	utils.WriteJSON(w, resource, http.StatusOK)
}
