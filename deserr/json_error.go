package deserr

import (
	weberrors "github.com/Roshick/go-autumn-payload/errors"
)

// JSONError is a ready-made error type for DeserializeFromValue. Without an
// explicit code it reports under the generic code of its kind.
type JSONError struct {
	Err  *Error
	code *weberrors.Code
}

func NewJSONError(err *Error) *JSONError {
	return &JSONError{Err: err}
}

// WithCode reports the error under code instead of the kind's default.
func (e *JSONError) WithCode(code weberrors.Code) *JSONError {
	e.code = &code
	return e
}

func (e *JSONError) Code() weberrors.Code {
	if e.code != nil {
		return *e.code
	}
	return CodeForKind(e.Err.Kind)
}

func (e *JSONError) Error() string {
	return e.Err.Error()
}

func (e *JSONError) Unwrap() error {
	return e.Err
}

func (e *JSONError) ResponseError() *weberrors.ResponseError {
	return weberrors.NewResponseError(e.Err.Message, e.Code())
}

func CodeForKind(kind ErrorKind) weberrors.Code {
	switch kind {
	case IncorrectValueKind:
		return weberrors.InvalidValueType
	case MissingField:
		return weberrors.MissingField
	case UnknownKey:
		return weberrors.UnknownField
	case OutOfRange:
		return weberrors.ValueOutOfRange
	default:
		return weberrors.InvalidValue
	}
}
