package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-sub-keeper/internal/logger"
	"github.com/MKhiriev/go-sub-keeper/internal/utils"
)

// IDTokenHeader carries the caller's identity credential.
const IDTokenHeader = "X-FireIDToken"

// auth verifies X-FireIDToken and stores the resolved user id in the request
// context under [utils.UserIDCtxKey].
//
// A missing header is answered with 401 unauthenticated, a token that does
// not verify with 403 permission-denied.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawToken := strings.TrimSpace(r.Header.Get(IDTokenHeader))
		if rawToken == "" {
			writeError(w, r, "*Handler.auth", ErrEmptyIDTokenHeader)
			return
		}

		ctx := r.Context()
		userID, err := h.services.IdentityService.VerifyIDToken(ctx, rawToken)
		if err != nil {
			writeError(w, r, "*Handler.auth", err)
			return
		}

		log := logger.FromRequest(r).With().Str("user_id", userID).Logger()
		ctx = log.WithContext(utils.WithUserID(ctx, userID))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
