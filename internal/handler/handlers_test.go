package handler

import (
	"testing"

	"github.com/MKhiriev/go-sub-keeper/internal/config"
	"github.com/MKhiriev/go-sub-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// http.NewHandler only stores the services pointer, so nil is safe here.
func TestNewHandlers_HTTPAddress(t *testing.T) {
	h, err := NewHandlers(nil, config.Server{HTTPAddress: ":8080"}, "1.0.0", logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(nil, config.Server{}, "1.0.0", logger.Nop())

	assert.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}
