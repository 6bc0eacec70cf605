package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpstreamErrorCarriesStoreStatus(t *testing.T) {
	err := NewUpstreamError(http.StatusBadGateway, "backend down")

	assert.Equal(t, http.StatusBadGateway, err.HTTPStatus, "store status becomes the response status")
	assert.Equal(t, http.StatusBadGateway, err.StoreStatus)
	assert.Equal(t, "backend down", err.StorePayload)
	assert.True(t, IsUpstream(err))
}

func TestErrorTypeSurvivesWrapping(t *testing.T) {
	inner := NewValidationError("label is required")
	wrapped := fmt.Errorf("command validation failed: %w", inner)

	assert.True(t, IsValidation(wrapped))

	appErr := GetAppError(wrapped)
	require.NotNil(t, appErr)
	assert.Equal(t, "label is required", appErr.Message)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
}

func TestWrapPlainError(t *testing.T) {
	err := Wrap(fmt.Errorf("boom"), "loading config")
	require.Error(t, err)

	appErr := GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, ErrorTypeInternal, appErr.Type)
	assert.Contains(t, appErr.Message, "loading config")
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "nothing"))
}

func TestTransportErrorIsInternalStatus(t *testing.T) {
	err := NewTransportError("graph store unreachable", fmt.Errorf("connection refused"))

	assert.True(t, IsTransport(err))
	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus)
	assert.Contains(t, err.Error(), "connection refused")
}
