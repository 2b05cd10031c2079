// internal/transport/lambdawebhook/handler.go
package lambdawebhook

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"

	"weather-fulfillment/internal/models"
	"weather-fulfillment/internal/transport/dialogflow"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
)

const (
	ComponentName   = "lambdawebhook"
	requestIDHeader = "X-Request-ID"
	requestError    = "An error occurred while processing the request."
)

type Logger interface {
	Error(msg string, fields map[string]interface{})
	With(fields map[string]interface{}) Logger
}

type Dispatcher interface {
	Dispatch(ctx context.Context, req models.IntentRequest) models.FulfillmentResponse
}

// Handler serves the webhook behind an API Gateway proxy integration. Every
// event is treated as a fulfillment call.
type Handler struct {
	dispatcher Dispatcher
	logger     Logger
}

func NewHandler(dispatcher Dispatcher, log Logger) *Handler {
	return &Handler{
		dispatcher: dispatcher,
		logger: log.With(map[string]interface{}{
			"component": ComponentName,
		}),
	}
}

// Handle never returns an error: API Gateway would turn it into a 502, so
// every failure is expressed as a response.
func (h *Handler) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (resp events.APIGatewayProxyResponse, err error) {
	requestID := requestIDOf(event)

	defer func() {
		if rec := recover(); rec != nil {
			h.logger.Error("panic while handling event", map[string]interface{}{
				"requestId": requestID,
				"panic":     fmt.Sprintf("%v", rec),
			})
			resp, err = toProxyResponse(models.Failure(requestError, http.StatusInternalServerError), requestID), nil
		}
	}()

	if event.HTTPMethod != "" && event.HTTPMethod != http.MethodPost {
		return toProxyResponse(models.Failure(http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed), requestID), nil
	}

	body := []byte(event.Body)
	if event.IsBase64Encoded {
		decoded, decodeErr := base64.StdEncoding.DecodeString(event.Body)
		if decodeErr != nil {
			h.logger.Error("failed to decode base64 body", map[string]interface{}{
				"requestId": requestID,
				"error":     decodeErr,
			})
			return toProxyResponse(models.Failure(requestError, http.StatusInternalServerError), requestID), nil
		}
		body = decoded
	}

	req := dialogflow.Decode(body, requestID)
	return toProxyResponse(h.dispatcher.Dispatch(ctx, req), requestID), nil
}

func requestIDOf(event events.APIGatewayProxyRequest) string {
	if id := event.Headers[requestIDHeader]; id != "" {
		return id
	}
	if id := event.RequestContext.RequestID; id != "" {
		return id
	}
	return uuid.NewString()
}

func toProxyResponse(resp models.FulfillmentResponse, requestID string) events.APIGatewayProxyResponse {
	contentType, body := dialogflow.Encode(resp)
	return events.APIGatewayProxyResponse{
		StatusCode: resp.HTTPStatus,
		Headers: map[string]string{
			"Content-Type":  contentType,
			requestIDHeader: requestID,
		},
		Body: string(body),
	}
}
