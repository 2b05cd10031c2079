// internal/transport/httpwebhook/response.go
package httpwebhook

import (
	"encoding/json"
	"net/http"

	"weather-fulfillment/internal/models"
	"weather-fulfillment/internal/transport/dialogflow"
)

const dispatchRequestError = "An error occurred while processing the request."

type lookupResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

func writeFulfillment(w http.ResponseWriter, resp models.FulfillmentResponse) {
	contentType, body := dialogflow.Encode(resp)
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(resp.HTTPStatus)
	_, _ = w.Write(body)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
