// Package errors provides the error taxonomy shared by the fulfillment pipeline.
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeConfiguration     ErrorCode = "CONFIGURATION_ERROR"
	ErrCodeParseFailure      ErrorCode = "PARSE_FAILURE"
	ErrCodeResolutionFailure ErrorCode = "RESOLUTION_FAILURE"
	ErrCodeProviderError     ErrorCode = "PROVIDER_ERROR"
	ErrCodeMalformedResponse ErrorCode = "MALFORMED_RESPONSE"
	ErrCodeMalformedRequest  ErrorCode = "MALFORMED_REQUEST"
	ErrCodeInternal          ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code           ErrorCode              `json:"code"`
	Message        string                 `json:"message"`
	Details        string                 `json:"details,omitempty"`
	Retryable      bool                   `json:"retryable"`
	UpstreamStatus int                    `json:"upstreamStatus,omitempty"`
	Metadata       map[string]interface{} `json:"metadata,omitempty"`
	Timestamp      time.Time              `json:"timestamp"`

	cause error
}

func (e *StandardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("StandardError[%s]: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

func (e *StandardError) Unwrap() error {
	return e.cause
}

// Is matches another *StandardError by code, so sentinel values such as
// ErrResolution can be used with errors.Is.
func (e *StandardError) Is(target error) bool {
	t, ok := target.(*StandardError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Sentinels for errors.Is checks.
var (
	ErrConfiguration     = &StandardError{Code: ErrCodeConfiguration}
	ErrParseFailure      = &StandardError{Code: ErrCodeParseFailure}
	ErrResolution        = &StandardError{Code: ErrCodeResolutionFailure}
	ErrProvider          = &StandardError{Code: ErrCodeProviderError}
	ErrMalformedResponse = &StandardError{Code: ErrCodeMalformedResponse}
	ErrMalformedRequest  = &StandardError{Code: ErrCodeMalformedRequest}
)

// ==========================
// 2. Error Constructors
// ==========================

// NewConfigurationError reports a missing or invalid required setting.
func NewConfigurationError(setting string) *StandardError {
	return &StandardError{
		Code:      ErrCodeConfiguration,
		Message:   "Required configuration is missing",
		Details:   fmt.Sprintf("setting: %s", setting),
		Timestamp: time.Now().UTC(),
	}
}

// NewParseFailureError wraps a coordinate grammar failure.
func NewParseFailureError(input string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeParseFailure,
		Message:   "Coordinate string does not match the expected format",
		Details:   fmt.Sprintf("input: %q", input),
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// NewResolutionFailureError reports that a location could not be turned into coordinates.
func NewResolutionFailureError(reason string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeResolutionFailure,
		Message:   "Location could not be resolved",
		Details:   reason,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// NewProviderError reports a non-success status from an upstream provider.
// message is the provider's own error text when it supplied one.
func NewProviderError(service string, status int, message string) *StandardError {
	return &StandardError{
		Code:           ErrCodeProviderError,
		Message:        message,
		Details:        fmt.Sprintf("service: %s, status: %d", service, status),
		UpstreamStatus: status,
		Metadata:       map[string]interface{}{"service": service},
		Timestamp:      time.Now().UTC(),
	}
}

// NewTransportError reports a failed outbound call (DNS, connection, timeout).
func NewTransportError(service string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeProviderError,
		Message:   "Upstream call failed",
		Details:   fmt.Sprintf("service: %s, error: %v", service, err),
		Metadata:  map[string]interface{}{"service": service},
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// NewMalformedResponseError reports a 200 response with an unexpected shape.
func NewMalformedResponseError(service, details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeMalformedResponse,
		Message:   "Upstream response has an unexpected shape",
		Details:   fmt.Sprintf("service: %s, %s", service, details),
		Metadata:  map[string]interface{}{"service": service},
		Timestamp: time.Now().UTC(),
	}
}

// NewMalformedRequestError reports an inbound payload without the required fields.
func NewMalformedRequestError(problems []string) *StandardError {
	return &StandardError{
		Code:      ErrCodeMalformedRequest,
		Message:   "Webhook request is malformed",
		Details:   fmt.Sprintf("%v", problems),
		Metadata:  map[string]interface{}{"problems": problems},
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. Utility Functions
// ==========================

// AsStandardError normalizes any error to a *StandardError. Errors that are
// not already classified become INTERNAL_ERROR.
func AsStandardError(err error) *StandardError {
	if err == nil {
		return nil
	}
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr
	}
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// CodeOf returns the code of err, or "" for nil.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ""
	}
	return AsStandardError(err).Code
}

// httpStatusMapping is the status used when an error reaches the webhook
// boundary. Parse and resolution failures are conversational outcomes.
var httpStatusMapping = map[ErrorCode]int{
	ErrCodeConfiguration:     http.StatusInternalServerError,
	ErrCodeParseFailure:      http.StatusOK,
	ErrCodeResolutionFailure: http.StatusOK,
	ErrCodeProviderError:     http.StatusInternalServerError,
	ErrCodeMalformedResponse: http.StatusInternalServerError,
	ErrCodeMalformedRequest:  http.StatusInternalServerError,
	ErrCodeInternal:          http.StatusInternalServerError,
}

// HTTPStatusFor returns the webhook status for an error code.
func HTTPStatusFor(code ErrorCode) int {
	if status, ok := httpStatusMapping[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	switch code {
	case ErrCodeConfiguration:
		return "configuration"
	case ErrCodeParseFailure, ErrCodeResolutionFailure, ErrCodeMalformedRequest:
		return "input"
	case ErrCodeProviderError, ErrCodeMalformedResponse:
		return "upstream"
	default:
		return "internal"
	}
}
