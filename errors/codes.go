package errors

import "net/http"

// ErrorType groups codes into coarse classes clients can branch on.
type ErrorType string

const (
	ErrorTypeInvalidRequest ErrorType = "invalid_request"
	ErrorTypeInternal       ErrorType = "internal"
)

// Code is a stable, client-facing error code.
type Code struct {
	Name           string
	Type           ErrorType
	HTTPStatusCode int
}

func (c Code) String() string {
	return c.Name
}

func newInvalidRequestCode(name string) Code {
	return Code{
		Name:           name,
		Type:           ErrorTypeInvalidRequest,
		HTTPStatusCode: http.StatusBadRequest,
	}
}

var (
	// MalformedPayload is reported when the request body cannot be parsed as JSON.
	MalformedPayload = newInvalidRequestCode("malformed_payload")

	BadRequest       = newInvalidRequestCode("bad_request")
	MissingField     = newInvalidRequestCode("missing_field")
	InvalidValueType = newInvalidRequestCode("invalid_value_type")
	UnknownField     = newInvalidRequestCode("unknown_field")
	ValueOutOfRange  = newInvalidRequestCode("value_out_of_range")
	InvalidValue     = newInvalidRequestCode("invalid_value")

	Internal = Code{
		Name:           "internal",
		Type:           ErrorTypeInternal,
		HTTPStatusCode: http.StatusInternalServerError,
	}
)
