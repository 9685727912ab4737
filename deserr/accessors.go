package deserr

import (
	"fmt"

	"github.com/valyala/fastjson"
)

// Fields gives keyed access to a JSON object.
type Fields struct {
	object   *fastjson.Object
	location Location
}

func Object(value *fastjson.Value, location Location) (*Fields, *Error) {
	if value == nil || value.Type() != fastjson.TypeObject {
		return nil, NewIncorrectValueKindError(value, location, "an object")
	}
	object, _ := value.Object()
	return &Fields{object: object, location: location}, nil
}

func (f *Fields) Location() Location {
	return f.location
}

// Required returns the value stored under key. A missing key or an explicit
// null are both reported as a missing field.
func (f *Fields) Required(key string) (*fastjson.Value, Location, *Error) {
	value, location, ok := f.Optional(key)
	if !ok {
		return nil, location, NewMissingFieldError(f.location, key)
	}
	return value, location, nil
}

// Optional returns the value stored under key; null counts as absent.
func (f *Fields) Optional(key string) (*fastjson.Value, Location, bool) {
	location := f.location.Key(key)
	value := f.lookup(key)
	if value == nil || value.Type() == fastjson.TypeNull {
		return nil, location, false
	}
	return value, location, true
}

// lookup returns the last value stored under key, so a repeated key
// overrides the earlier ones.
func (f *Fields) lookup(key string) *fastjson.Value {
	var found *fastjson.Value
	f.object.Visit(func(k []byte, v *fastjson.Value) {
		if string(k) == key {
			found = v
		}
	})
	return found
}

// DenyUnknown rejects the first key, in document order, that is not accepted.
func (f *Fields) DenyUnknown(accepted ...string) *Error {
	allowed := make(map[string]struct{}, len(accepted))
	for _, key := range accepted {
		allowed[key] = struct{}{}
	}

	var unknown *Error
	f.object.Visit(func(key []byte, _ *fastjson.Value) {
		if unknown != nil {
			return
		}
		if _, ok := allowed[string(key)]; !ok {
			unknown = NewUnknownKeyError(f.location, string(key), accepted)
		}
	})
	return unknown
}

func String(value *fastjson.Value, location Location) (string, *Error) {
	if value == nil || value.Type() != fastjson.TypeString {
		return "", NewIncorrectValueKindError(value, location, "a string")
	}
	b, _ := value.StringBytes()
	return string(b), nil
}

func NonEmptyString(value *fastjson.Value, location Location) (string, *Error) {
	s, err := String(value, location)
	if err != nil {
		return "", err
	}
	if s == "" {
		return "", NewUnexpectedError(location, "expected a non-empty string")
	}
	return s, nil
}

func Int(value *fastjson.Value, location Location) (int, *Error) {
	if value == nil || value.Type() != fastjson.TypeNumber {
		return 0, NewIncorrectValueKindError(value, location, "an integer")
	}
	i, err := value.Int()
	if err != nil {
		return 0, NewIncorrectValueKindError(value, location, "an integer")
	}
	return i, nil
}

// IntInRange accepts integers within [minimum, maximum].
func IntInRange(value *fastjson.Value, location Location, minimum, maximum int) (int, *Error) {
	i, err := Int(value, location)
	if err != nil {
		return 0, err
	}
	if i < minimum || i > maximum {
		return 0, NewOutOfRangeError(value, location, fmt.Sprintf("an integer between %d and %d", minimum, maximum))
	}
	return i, nil
}

func Float(value *fastjson.Value, location Location) (float64, *Error) {
	if value == nil || value.Type() != fastjson.TypeNumber {
		return 0, NewIncorrectValueKindError(value, location, "a number")
	}
	f, err := value.Float64()
	if err != nil {
		return 0, NewIncorrectValueKindError(value, location, "a number")
	}
	return f, nil
}

func Bool(value *fastjson.Value, location Location) (bool, *Error) {
	if value == nil {
		return false, NewIncorrectValueKindError(value, location, "a boolean")
	}
	switch value.Type() {
	case fastjson.TypeTrue:
		return true, nil
	case fastjson.TypeFalse:
		return false, nil
	default:
		return false, NewIncorrectValueKindError(value, location, "a boolean")
	}
}

func Array(value *fastjson.Value, location Location) ([]*fastjson.Value, *Error) {
	if value == nil || value.Type() != fastjson.TypeArray {
		return nil, NewIncorrectValueKindError(value, location, "an array")
	}
	items, _ := value.Array()
	return items, nil
}

func StringArray(value *fastjson.Value, location Location) ([]string, *Error) {
	items, err := Array(value, location)
	if err != nil {
		return nil, err
	}
	result := make([]string, 0, len(items))
	for i, item := range items {
		s, err := String(item, location.Index(i))
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, nil
}
