// internal/transport/dialogflow/codec_test.go
package dialogflow

import (
	"net/http"
	"testing"

	"weather-fulfillment/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const countryRequest = `{
  "responseId": "a1b2",
  "session": "projects/weather/agent/sessions/123",
  "queryResult": {
    "queryText": "Austin Texas US",
    "languageCode": "en",
    "intent": {"name": "projects/weather/agent/intents/9", "displayName": "GetCountryName"},
    "outputContexts": [
      {"name": "projects/weather/agent/sessions/123/contexts/getcountryname-followup", "lifespanCount": 2,
       "parameters": {"geo-city": "Austin", "geo-city.original": "Austin",
                      "geo-state": "Texas", "geo-state.original": "Texas",
                      "geo-country": "United States", "geo-country.original": "US"}}
    ]
  }
}`

func TestDecode(t *testing.T) {
	req := Decode([]byte(countryRequest), "req-1")

	assert.Equal(t, "req-1", req.RequestID)
	assert.Equal(t, "GetCountryName", req.IntentName)
	assert.Equal(t, "Austin Texas US", req.QueryText)
	assert.Empty(t, req.Problems)
	require.Len(t, req.Contexts, 1)
	assert.Equal(t, "US", req.Contexts[0].Parameters["geo-country.original"])
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantIntent string
	}{
		{name: "empty body", body: ``},
		{name: "not json", body: `intent=Greeting`},
		{name: "missing query result", body: `{"session":"s"}`},
		{name: "missing intent", body: `{"queryResult":{"queryText":"hello"}}`},
		{name: "display name not a string", body: `{"queryResult":{"intent":{"displayName":7}}}`},
		{
			name:       "bad contexts keep the intent",
			body:       `{"queryResult":{"intent":{"displayName":"Greeting"},"outputContexts":"nope"}}`,
			wantIntent: "Greeting",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req models.IntentRequest
			assert.NotPanics(t, func() { req = Decode([]byte(tt.body), "id") })
			assert.Equal(t, tt.wantIntent, req.IntentName)
			assert.NotEmpty(t, req.Problems)
		})
	}
}

func TestEncode(t *testing.T) {
	contentType, body := Encode(models.Conversational("Hi there"))
	assert.Equal(t, ContentTypeJSON, contentType)
	assert.JSONEq(t, `{"fulfillmentText":"Hi there"}`, string(body))

	contentType, body = Encode(models.Failure("OPENWEATHERMAP_API_KEY must be provided!", http.StatusInternalServerError))
	assert.Equal(t, ContentTypeText, contentType)
	assert.Equal(t, "OPENWEATHERMAP_API_KEY must be provided!", string(body))
}
