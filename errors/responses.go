package errors

import (
	"fmt"
	"net/http"

	"github.com/go-chi/render"
)

// ErrorCoder is implemented by errors that know how to present themselves to clients.
type ErrorCoder interface {
	ResponseError() *ResponseError
}

// ResponseError is the structured error returned to clients.
type ResponseError struct {
	HTTPStatusCode int       `json:"-"`
	Message        string    `json:"message"`
	Code           string    `json:"code"`
	Type           ErrorType `json:"type"`
}

func NewResponseError(message string, code Code) *ResponseError {
	if message == "" {
		message = "Invalid request"
	}
	return &ResponseError{
		HTTPStatusCode: code.HTTPStatusCode,
		Message:        message,
		Code:           code.Name,
		Type:           code.Type,
	}
}

// NewMalformedPayloadResponse reports a body that could not be parsed, keeping
// the parser diagnostic in the message.
func NewMalformedPayloadResponse(err error) *ResponseError {
	message := "The request body could not be parsed"
	if err != nil {
		message = fmt.Sprintf("%s: %s", message, err)
	}
	return NewResponseError(message, MalformedPayload)
}

func NewInternalResponse() *ResponseError {
	return NewResponseError("An unexpected error occurred", Internal)
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ResponseError lets a *ResponseError be used wherever an ErrorCoder is expected.
func (e *ResponseError) ResponseError() *ResponseError {
	return e
}

func (e *ResponseError) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}
