// internal/transport/dialogflow/types.go
package dialogflow

// WebhookRequest is the Dialogflow ES v2 fulfillment request, reduced to the
// fields the webhook reads.
type WebhookRequest struct {
	ResponseID  string      `json:"responseId"`
	Session     string      `json:"session"`
	QueryResult QueryResult `json:"queryResult"`
}

type QueryResult struct {
	QueryText      string                 `json:"queryText"`
	LanguageCode   string                 `json:"languageCode"`
	Parameters     map[string]interface{} `json:"parameters"`
	Intent         Intent                 `json:"intent"`
	OutputContexts []OutputContext        `json:"outputContexts"`
}

type Intent struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
}

type OutputContext struct {
	Name          string                 `json:"name"`
	LifespanCount int                    `json:"lifespanCount,omitempty"`
	Parameters    map[string]interface{} `json:"parameters"`
}

type WebhookResponse struct {
	FulfillmentText string `json:"fulfillmentText"`
}
