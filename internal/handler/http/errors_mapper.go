package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-sub-keeper/internal/app"
	"github.com/MKhiriev/go-sub-keeper/internal/logger"
	"github.com/MKhiriev/go-sub-keeper/internal/service"
	"github.com/MKhiriev/go-sub-keeper/internal/utils"
	"github.com/MKhiriev/go-sub-keeper/models"
)

type codedMessage struct {
	code    app.Code
	message string
}

// errorStatusMap classifies errors that reach handlers without an *app.Error.
var errorStatusMap = map[error]codedMessage{
	ErrEmptyIDTokenHeader:           {app.Unauthenticated, app.MsgUnauthorizedAccess},
	ErrNoUserInContext:              {app.Unauthenticated, app.MsgUnauthorizedAccess},
	service.ErrInvalidIDToken:       {app.PermissionDenied, app.MsgInvalidIDToken},
	service.ErrMissingPurchaseField: {app.InvalidArgument, app.MsgMissingPurchaseFields},
	service.ErrEmptyDeviceToken:     {app.InvalidArgument, app.MsgInvalidInstanceID},
}

func statusFromError(err error) (app.Code, string) {
	var appErr *app.Error
	if errors.As(err, &appErr) {
		return appErr.Code, appErr.Message
	}
	for target, cm := range errorStatusMap {
		if errors.Is(err, target) {
			return cm.code, cm.message
		}
	}
	return app.Internal, app.MsgInternalServerError
}

// writeError logs err and writes the structured error body.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	code, message := statusFromError(err)

	logger.FromRequest(r).Err(err).
		Str("func", funcName).
		Str("code", code.String()).
		Msg(message)

	utils.WriteJSON(w, models.ErrorResponse{
		Status:  code.HTTPStatus(),
		Error:   code.String(),
		Message: message,
	}, code.HTTPStatus())
}
