package deserr

import (
	"fmt"
	"strings"

	"github.com/valyala/fastjson"
)

// ErrorKind classifies why a value was rejected.
type ErrorKind int

const (
	IncorrectValueKind ErrorKind = iota
	MissingField
	UnknownKey
	OutOfRange
	Unexpected
)

func (k ErrorKind) String() string {
	switch k {
	case IncorrectValueKind:
		return "incorrect-value-kind"
	case MissingField:
		return "missing-field"
	case UnknownKey:
		return "unknown-key"
	case OutOfRange:
		return "out-of-range"
	default:
		return "unexpected"
	}
}

// Error describes a single rejected value.
type Error struct {
	Kind     ErrorKind
	Location Location
	Message  string
}

func (e *Error) Error() string {
	return e.Message
}

func NewIncorrectValueKindError(value *fastjson.Value, location Location, expected string) *Error {
	return &Error{
		Kind:     IncorrectValueKind,
		Location: location,
		Message:  fmt.Sprintf("Invalid value type%s: expected %s, but found %s", at(location), expected, describe(value)),
	}
}

// NewMissingFieldError reports that the object at location lacks key.
func NewMissingFieldError(location Location, key string) *Error {
	return &Error{
		Kind:     MissingField,
		Location: location.Key(key),
		Message:  fmt.Sprintf("Missing field `%s`%s", key, inside(location)),
	}
}

func NewUnknownKeyError(location Location, key string, accepted []string) *Error {
	quoted := make([]string, len(accepted))
	for i, a := range accepted {
		quoted[i] = "`" + a + "`"
	}
	return &Error{
		Kind:     UnknownKey,
		Location: location.Key(key),
		Message:  fmt.Sprintf("Unknown field `%s`%s: expected one of %s", key, inside(location), strings.Join(quoted, ", ")),
	}
}

func NewOutOfRangeError(value *fastjson.Value, location Location, expected string) *Error {
	return &Error{
		Kind:     OutOfRange,
		Location: location,
		Message:  fmt.Sprintf("Out of range value%s: expected %s, but found `%s`", at(location), expected, value),
	}
}

// NewUnexpectedError carries a domain rule violation that fits no other kind.
func NewUnexpectedError(location Location, format string, args ...any) *Error {
	return &Error{
		Kind:     Unexpected,
		Location: location,
		Message:  fmt.Sprintf("Invalid value%s: %s", at(location), fmt.Sprintf(format, args...)),
	}
}

func at(location Location) string {
	if location.IsRoot() {
		return ""
	}
	return fmt.Sprintf(" at `%s`", location)
}

func inside(location Location) string {
	if location.IsRoot() {
		return ""
	}
	return fmt.Sprintf(" inside `%s`", location)
}

func describe(value *fastjson.Value) string {
	if value == nil {
		return "nothing"
	}
	switch value.Type() {
	case fastjson.TypeNull:
		return "null"
	case fastjson.TypeObject:
		return fmt.Sprintf("an object: `%s`", value)
	case fastjson.TypeArray:
		return fmt.Sprintf("an array: `%s`", value)
	case fastjson.TypeString:
		return fmt.Sprintf("a string: `%s`", value)
	case fastjson.TypeTrue, fastjson.TypeFalse:
		return fmt.Sprintf("a boolean: `%s`", value)
	case fastjson.TypeNumber:
		if i, err := value.Int64(); err == nil {
			if i < 0 {
				return fmt.Sprintf("a negative integer: `%s`", value)
			}
			return fmt.Sprintf("a positive integer: `%s`", value)
		}
		return fmt.Sprintf("a number: `%s`", value)
	default:
		return fmt.Sprintf("`%s`", value)
	}
}
