package skyscanner

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeAdelek/Google-Flight-Clone/internal/domain"
)

func TestClassifyStatus_FixedKinds(t *testing.T) {
	tests := []struct {
		status   int
		wantKind domain.ErrorKind
	}{
		{http.StatusUnauthorized, domain.KindUnauthorized},
		{http.StatusForbidden, domain.KindForbidden},
		{http.StatusTooManyRequests, domain.KindRateLimit},
		{http.StatusInternalServerError, domain.KindServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.wantKind), func(t *testing.T) {
			cerr := classifyStatus(tt.status, nil)
			assert.Equal(t, tt.wantKind, cerr.Kind)
			assert.Equal(t, tt.status, cerr.HTTPStatus)
			assert.NotEmpty(t, cerr.Message)
		})
	}
}

func TestClassifyStatus_OtherStatusesBecomeAPIError(t *testing.T) {
	for _, status := range []int{400, 404, 422, 502, 503} {
		cerr := classifyStatus(status, nil)
		assert.Equal(t, domain.KindAPIError, cerr.Kind, "status %d", status)
		assert.Equal(t, status, cerr.HTTPStatus)
	}
}

func TestClassifyStatus_ProviderMessage(t *testing.T) {
	tests := []struct {
		name    string
		body    []byte
		wantMsg string
	}{
		{
			name:    "string message",
			body:    []byte(`{"message": "You are not subscribed to this API."}`),
			wantMsg: "You are not subscribed to this API.",
		},
		{
			name:    "field error list",
			body:    []byte(`{"message": [{"originSkyId": "originSkyId is required"}]}`),
			wantMsg: "originSkyId is required",
		},
		{
			name:    "no message falls back to status text",
			body:    []byte(`{}`),
			wantMsg: "The flight data service returned an unexpected status 404.",
		},
		{
			name:    "garbage body falls back to status text",
			body:    []byte(`<html>`),
			wantMsg: "The flight data service returned an unexpected status 404.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cerr := classifyStatus(404, tt.body)
			assert.Equal(t, tt.wantMsg, cerr.Message)
		})
	}
}

func TestClassifyTransportFailure(t *testing.T) {
	cerr := classifyTransportFailure(errors.New("dial tcp: connection refused"))

	require.NotNil(t, cerr)
	assert.Equal(t, domain.KindNetworkError, cerr.Kind)
	assert.Zero(t, cerr.HTTPStatus)
	assert.NotContains(t, cerr.Message, "dial tcp",
		"raw transport detail must not leak into the user message")
}

func TestClassifyRequestFailure(t *testing.T) {
	cerr := classifyRequestFailure(errors.New("invalid URL"))

	assert.Equal(t, domain.KindUnknownError, cerr.Kind)
	assert.NotEmpty(t, cerr.Message)
}
