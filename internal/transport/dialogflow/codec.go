// internal/transport/dialogflow/codec.go
package dialogflow

import (
	"encoding/json"
	"errors"

	"weather-fulfillment/internal/common/validation"
	"weather-fulfillment/internal/models"
)

const (
	ContentTypeJSON = "application/json"
	ContentTypeText = "text/plain; charset=utf-8"
)

// Decode converts a raw fulfillment body into an IntentRequest. It never
// fails: schema violations are listed in Problems and whatever could be read
// is kept, so the dispatcher decides how a malformed request is answered.
func Decode(body []byte, requestID string) models.IntentRequest {
	req := models.IntentRequest{RequestID: requestID}

	result := validation.ValidateWebhookRequest(body)
	if !result.Valid {
		req.Problems = result.GetErrorMessages()
	}

	var wire WebhookRequest
	if err := json.Unmarshal(body, &wire); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return req
		}
	}

	req.IntentName = wire.QueryResult.Intent.DisplayName
	req.QueryText = wire.QueryResult.QueryText
	req.Contexts = make([]models.OutputContext, 0, len(wire.QueryResult.OutputContexts))
	for _, c := range wire.QueryResult.OutputContexts {
		req.Contexts = append(req.Contexts, models.OutputContext{
			Name:       c.Name,
			Parameters: c.Parameters,
		})
	}
	return req
}

// Encode renders a FulfillmentResponse body and its content type.
func Encode(resp models.FulfillmentResponse) (string, []byte) {
	if resp.Format == models.FormatText {
		return ContentTypeText, []byte(resp.Text)
	}

	data, err := json.Marshal(WebhookResponse{FulfillmentText: resp.Text})
	if err != nil {
		return ContentTypeText, []byte(resp.Text)
	}
	return ContentTypeJSON, data
}
