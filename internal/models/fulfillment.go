// internal/models/fulfillment.go
package models

import "net/http"

// OutputContext is one dialog context entry carried on the inbound request.
type OutputContext struct {
	Name       string                 `json:"name"`
	Parameters map[string]interface{} `json:"parameters"`
}

// IntentRequest is the transport-independent view of one webhook call.
type IntentRequest struct {
	RequestID  string          `json:"requestId"`
	IntentName string          `json:"intentName"`
	QueryText  string          `json:"queryText"`
	Contexts   []OutputContext `json:"contexts"`

	// Problems lists schema violations found while decoding the payload.
	Problems []string `json:"problems,omitempty"`
}

type ResponseFormat string

const (
	FormatJSON ResponseFormat = "json"
	FormatText ResponseFormat = "text"
)

// FulfillmentResponse is the only value the dispatcher produces.
type FulfillmentResponse struct {
	Text       string         `json:"fulfillmentText"`
	HTTPStatus int            `json:"-"`
	Format     ResponseFormat `json:"-"`
}

// Conversational returns a 200 response rendered as a fulfillment JSON body.
func Conversational(text string) FulfillmentResponse {
	return FulfillmentResponse{Text: text, HTTPStatus: http.StatusOK, Format: FormatJSON}
}

// Failure returns a raw-text response with the given status.
func Failure(text string, status int) FulfillmentResponse {
	return FulfillmentResponse{Text: text, HTTPStatus: status, Format: FormatText}
}
