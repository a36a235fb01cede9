package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-sub-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name       string
		data       any
		statusCode int
		wantBody   string
	}{
		{
			name:       "status list",
			data:       models.SubscriptionStatusList{Subscriptions: []models.SubscriptionStatus{{ProductID: "basic", EntitlementActive: true}}},
			statusCode: http.StatusOK,
			wantBody:   `{"subscriptions":[{"productId":"basic","entitlementActive":true,"willRenew":false,"activeUntilMillisec":0,"isFreeTrial":false,"isGracePeriod":false,"isAccountHold":false,"isPaused":false,"autoResumeTimeMillis":0}]}`,
		},
		{
			name:       "error body",
			data:       models.ErrorResponse{Status: http.StatusConflict, Error: "already-exists", Message: "owned"},
			statusCode: http.StatusConflict,
			wantBody:   `{"status":409,"error":"already-exists","message":"owned"}`,
		},
		{
			name:       "nil",
			data:       nil,
			statusCode: http.StatusOK,
			wantBody:   `null`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.statusCode)

			require.NoError(t, err)
			assert.Equal(t, len(tt.wantBody), n)
			assert.Equal(t, tt.statusCode, w.Code)
			assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
			assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestWriteJSON_UnencodableData(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
