package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-sub-keeper/internal/app"
	"github.com/MKhiriev/go-sub-keeper/models"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError returns nil for a 2xx response and an *app.StatusError
// otherwise.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return &app.StatusError{
		StatusCode: resp.StatusCode(),
		Message:    errorMessage(resp.Body()),
	}
}

// errorMessage prefers the "message" field of a JSON error body, then the
// raw body, then a fixed placeholder.
func errorMessage(body []byte) string {
	var errResp models.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && strings.TrimSpace(errResp.Message) != "" {
		return strings.TrimSpace(errResp.Message)
	}

	if raw := strings.TrimSpace(string(body)); raw != "" {
		return raw
	}

	return app.MsgNoErrorBody
}
