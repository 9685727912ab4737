package deserr

import (
	weberrors "github.com/Roshick/go-autumn-payload/errors"
	"github.com/valyala/fastjson"
)

// DeserializeError constrains the error type a domain type reports with. Its
// zero value stands for success.
type DeserializeError interface {
	comparable
	error
	weberrors.ErrorCoder
}

// FromValue is satisfied by *T when T can populate itself from a parsed JSON
// value, failing with E.
type FromValue[T any, E DeserializeError] interface {
	*T
	DeserializeFromValue(value *fastjson.Value, location Location) E
}

// Deserialize builds a T from value. On failure the returned T is the zero
// value, never a partially populated one.
func Deserialize[T any, E DeserializeError, P FromValue[T, E]](value *fastjson.Value) (T, E) {
	var target T
	var none E
	if err := P(&target).DeserializeFromValue(value, Root()); err != none {
		var zero T
		return zero, err
	}
	return target, none
}
