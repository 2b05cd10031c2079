// internal/common/errors/handler.go
package errors

// ErrorHandler normalizes and logs errors that reach the webhook boundary.
type ErrorHandler struct {
	logger Logger
}

type Logger interface {
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

func NewErrorHandler(logger Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// Handle logs err with its classification and returns the normalized form.
// Input-category errors are expected conversational outcomes and log at warn.
func (h *ErrorHandler) Handle(err error, fields map[string]interface{}) *StandardError {
	stdErr := AsStandardError(err)
	if stdErr == nil {
		return nil
	}

	logFields := map[string]interface{}{
		"errorCode":     string(stdErr.Code),
		"errorCategory": GetErrorCategory(stdErr.Code),
		"message":       stdErr.Message,
		"details":       stdErr.Details,
	}
	if stdErr.UpstreamStatus != 0 {
		logFields["upstreamStatus"] = stdErr.UpstreamStatus
	}
	for k, v := range fields {
		logFields[k] = v
	}

	if GetErrorCategory(stdErr.Code) == "input" {
		h.logger.Warn("request failed", logFields)
	} else {
		h.logger.Error("request failed", logFields)
	}
	return stdErr
}
