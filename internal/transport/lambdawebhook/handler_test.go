// internal/transport/lambdawebhook/handler_test.go
package lambdawebhook

import (
	"context"
	"encoding/base64"
	"net/http"
	"testing"

	"weather-fulfillment/internal/models"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type TestLogger struct {
	t *testing.T
}

func (l *TestLogger) Error(msg string, fields map[string]interface{}) { l.t.Logf("ERROR: %s %v", msg, fields) }
func (l *TestLogger) With(fields map[string]interface{}) Logger       { return l }

type MockDispatcher struct {
	mock.Mock
}

func (m *MockDispatcher) Dispatch(ctx context.Context, req models.IntentRequest) models.FulfillmentResponse {
	args := m.Called(ctx, req)
	return args.Get(0).(models.FulfillmentResponse)
}

const greetingBody = `{"queryResult":{"queryText":"hi","intent":{"displayName":"Greeting"}}}`

func isGreeting(req models.IntentRequest) bool { return req.IntentName == "Greeting" }

func TestHandler_Handle(t *testing.T) {
	tests := []struct {
		name   string
		event  events.APIGatewayProxyRequest
		wantID string
	}{
		{
			name: "plain body with gateway request id",
			event: events.APIGatewayProxyRequest{
				HTTPMethod:     http.MethodPost,
				Body:           greetingBody,
				RequestContext: events.APIGatewayProxyRequestContext{RequestID: "gw-1"},
			},
			wantID: "gw-1",
		},
		{
			name: "base64 body with header request id",
			event: events.APIGatewayProxyRequest{
				HTTPMethod:      http.MethodPost,
				Body:            base64.StdEncoding.EncodeToString([]byte(greetingBody)),
				IsBase64Encoded: true,
				Headers:         map[string]string{"X-Request-ID": "hdr-1"},
			},
			wantID: "hdr-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := new(MockDispatcher)
			d.On("Dispatch", mock.Anything, mock.MatchedBy(func(req models.IntentRequest) bool {
				return isGreeting(req) && req.RequestID == tt.wantID
			})).Return(models.Conversational("Hi!")).Once()

			resp, err := NewHandler(d, &TestLogger{t: t}).Handle(context.Background(), tt.event)
			require.NoError(t, err)

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, "application/json", resp.Headers["Content-Type"])
			assert.Equal(t, tt.wantID, resp.Headers["X-Request-ID"])
			assert.JSONEq(t, `{"fulfillmentText":"Hi!"}`, resp.Body)
			d.AssertExpectations(t)
		})
	}
}

func TestHandler_Handle_TextFailure(t *testing.T) {
	d := new(MockDispatcher)
	d.On("Dispatch", mock.Anything, mock.Anything).
		Return(models.Failure("OPENWEATHERMAP_API_KEY must be provided!", http.StatusInternalServerError))

	resp, err := NewHandler(d, &TestLogger{t: t}).Handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Body:       greetingBody,
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "text/plain; charset=utf-8", resp.Headers["Content-Type"])
	assert.Equal(t, "OPENWEATHERMAP_API_KEY must be provided!", resp.Body)
	assert.NotEmpty(t, resp.Headers["X-Request-ID"])
}

func TestHandler_Handle_Rejections(t *testing.T) {
	d := new(MockDispatcher)
	h := NewHandler(d, &TestLogger{t: t})

	resp, err := h.Handle(context.Background(), events.APIGatewayProxyRequest{HTTPMethod: http.MethodGet})
	require.NoError(t, err)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	resp, err = h.Handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod:      http.MethodPost,
		Body:            "%%%not-base64",
		IsBase64Encoded: true,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, requestError, resp.Body)

	d.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
}

func TestHandler_Handle_RecoversPanics(t *testing.T) {
	d := new(MockDispatcher)
	d.On("Dispatch", mock.Anything, mock.Anything).Run(func(mock.Arguments) { panic("boom") })

	resp, err := NewHandler(d, &TestLogger{t: t}).Handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Body:       greetingBody,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, requestError, resp.Body)
}
