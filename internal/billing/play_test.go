package billing

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-sub-keeper/internal/config"
	"github.com/MKhiriev/go-sub-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"google.golang.org/api/googleapi"
)

func TestClassifyPlayError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "bad request", err: &googleapi.Error{Code: http.StatusBadRequest}, want: ErrInvalidPurchase},
		{name: "not found", err: &googleapi.Error{Code: http.StatusNotFound}, want: ErrInvalidPurchase},
		{name: "gone", err: &googleapi.Error{Code: http.StatusGone}, want: ErrInvalidPurchase},
		{name: "rate limited", err: &googleapi.Error{Code: http.StatusTooManyRequests}, want: ErrBillingUnavailable},
		{name: "server error", err: &googleapi.Error{Code: http.StatusServiceUnavailable}, want: ErrBillingUnavailable},
		{name: "transport", err: errors.New("dial tcp: timeout"), want: ErrBillingUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyPlayError(tt.err)
			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

func TestNewPlayClient_EmptyPackageName(t *testing.T) {
	_, err := NewPlayClient(context.Background(), config.Billing{PackageName: "  "}, logger.Nop())
	assert.ErrorIs(t, err, ErrEmptyPackageName)
}
