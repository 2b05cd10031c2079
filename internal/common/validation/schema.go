package validation

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// WebhookRequestSchema describes the subset of a Dialogflow ES v2 fulfillment
// request the dispatcher relies on.
const WebhookRequestSchema = `{
  "type": "object",
  "required": ["queryResult"],
  "properties": {
    "queryResult": {
      "type": "object",
      "required": ["intent"],
      "properties": {
        "queryText": {"type": "string"},
        "intent": {
          "type": "object",
          "required": ["displayName"],
          "properties": {
            "displayName": {"type": "string", "minLength": 1}
          }
        },
        "outputContexts": {
          "type": "array",
          "items": {
            "type": "object",
            "properties": {
              "name": {"type": "string"},
              "parameters": {"type": "object"}
            }
          }
        }
      }
    }
  }
}`

var webhookSchema = mustSchema(WebhookRequestSchema)

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

func mustSchema(src string) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("invalid built-in schema: %v", err))
	}
	return s
}

// ValidateWebhookRequest checks a raw JSON body against WebhookRequestSchema.
// A body that is not JSON yields a single INVALID_JSON error.
func ValidateWebhookRequest(body []byte) *ValidationResult {
	return Validate(webhookSchema, gojsonschema.NewBytesLoader(body))
}

// Validate runs a compiled schema against a document.
func Validate(schema *gojsonschema.Schema, document gojsonschema.JSONLoader) *ValidationResult {
	result, err := schema.Validate(document)
	if err != nil {
		return &ValidationResult{
			Valid: false,
			Errors: []ValidationError{{
				Field:   "(root)",
				Message: err.Error(),
				Code:    "INVALID_JSON",
			}},
		}
	}

	errs := make([]ValidationError, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		errs = append(errs, ValidationError{
			Field:   desc.Field(),
			Message: desc.Description(),
			Code:    strings.ToUpper(desc.Type()),
		})
	}

	return &ValidationResult{
		Valid:  result.Valid(),
		Errors: errs,
	}
}

// GetErrorMessages returns a simple list of error messages
func (vr *ValidationResult) GetErrorMessages() []string {
	messages := make([]string, len(vr.Errors))
	for i, err := range vr.Errors {
		messages[i] = fmt.Sprintf("%s: %s", err.Field, err.Message)
	}
	return messages
}

// HasErrors checks if validation has errors for specific field
func (vr *ValidationResult) HasErrors(field string) bool {
	for _, err := range vr.Errors {
		if err.Field == field {
			return true
		}
	}
	return false
}

// GetErrorsForField returns errors for a specific field and its children.
func (vr *ValidationResult) GetErrorsForField(field string) []ValidationError {
	var fieldErrors []ValidationError
	for _, err := range vr.Errors {
		if err.Field == field || strings.HasPrefix(err.Field, field+".") {
			fieldErrors = append(fieldErrors, err)
		}
	}
	return fieldErrors
}
