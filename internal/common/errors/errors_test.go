package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	warns  []map[string]interface{}
	errors []map[string]interface{}
}

func (l *recordingLogger) Warn(msg string, fields map[string]interface{}) {
	l.warns = append(l.warns, fields)
}

func (l *recordingLogger) Error(msg string, fields map[string]interface{}) {
	l.errors = append(l.errors, fields)
}

func TestStandardError_IsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("resolve: %w", NewResolutionFailureError("no candidates", nil))

	assert.True(t, stderrors.Is(err, ErrResolution))
	assert.False(t, stderrors.Is(err, ErrProvider))
	assert.Equal(t, ErrCodeResolutionFailure, CodeOf(err))
}

func TestStandardError_UnwrapsCause(t *testing.T) {
	cause := stderrors.New("PARSE_FAILURE")
	err := NewResolutionFailureError("parse", NewParseFailureError("New York", cause))

	assert.True(t, stderrors.Is(err, cause))
	assert.True(t, stderrors.Is(err, ErrParseFailure))
}

func TestAsStandardError(t *testing.T) {
	assert.Nil(t, AsStandardError(nil))
	assert.Equal(t, ErrorCode(""), CodeOf(nil))

	plain := stderrors.New("boom")
	stdErr := AsStandardError(plain)
	require.NotNil(t, stdErr)
	assert.Equal(t, ErrCodeInternal, stdErr.Code)
	assert.Equal(t, "boom", stdErr.Details)
	assert.True(t, stderrors.Is(stdErr, plain))
}

func TestNewProviderError(t *testing.T) {
	err := NewProviderError("openweathermap", http.StatusUnauthorized, "Invalid API key")

	assert.Equal(t, ErrCodeProviderError, err.Code)
	assert.Equal(t, "Invalid API key", err.Message)
	assert.Equal(t, http.StatusUnauthorized, err.UpstreamStatus)
	assert.Contains(t, err.Error(), "PROVIDER_ERROR")
	assert.False(t, err.Retryable)
}

func TestHTTPStatusFor(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want int
	}{
		{ErrCodeConfiguration, http.StatusInternalServerError},
		{ErrCodeParseFailure, http.StatusOK},
		{ErrCodeResolutionFailure, http.StatusOK},
		{ErrCodeProviderError, http.StatusInternalServerError},
		{ErrCodeMalformedResponse, http.StatusInternalServerError},
		{ErrCodeMalformedRequest, http.StatusInternalServerError},
		{ErrorCode("SOMETHING_NEW"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatusFor(tt.code))
		})
	}
}

func TestGetErrorCategory(t *testing.T) {
	assert.Equal(t, "configuration", GetErrorCategory(ErrCodeConfiguration))
	assert.Equal(t, "input", GetErrorCategory(ErrCodeParseFailure))
	assert.Equal(t, "input", GetErrorCategory(ErrCodeMalformedRequest))
	assert.Equal(t, "upstream", GetErrorCategory(ErrCodeMalformedResponse))
	assert.Equal(t, "internal", GetErrorCategory(ErrCodeInternal))
}

func TestErrorHandler_Handle(t *testing.T) {
	log := &recordingLogger{}
	h := NewErrorHandler(log)

	assert.Nil(t, h.Handle(nil, nil))

	stdErr := h.Handle(NewParseFailureError("x", nil), map[string]interface{}{"intent": "GetWeather"})
	assert.Equal(t, ErrCodeParseFailure, stdErr.Code)
	require.Len(t, log.warns, 1)
	assert.Equal(t, "GetWeather", log.warns[0]["intent"])

	stdErr = h.Handle(NewProviderError("openweathermap", 503, "down"), nil)
	assert.Equal(t, ErrCodeProviderError, stdErr.Code)
	require.Len(t, log.errors, 1)
	assert.Equal(t, 503, log.errors[0]["upstreamStatus"])
	assert.Equal(t, "upstream", log.errors[0]["errorCategory"])
}
