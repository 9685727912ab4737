package jsonbody

import (
	"net/http"
	"sync/atomic"

	"github.com/Roshick/go-autumn-payload/deserr"
	weberrors "github.com/Roshick/go-autumn-payload/errors"
	"github.com/valyala/fastjson"
)

type createIndexRequest struct {
	UID        string
	PrimaryKey string
}

func (r *createIndexRequest) DeserializeFromValue(value *fastjson.Value, location deserr.Location) *deserr.JSONError {
	fields, err := deserr.Object(value, location)
	if err != nil {
		return deserr.NewJSONError(err)
	}
	uid, uidLocation, err := fields.Required("uid")
	if err != nil {
		return deserr.NewJSONError(err)
	}
	if r.UID, err = deserr.String(uid, uidLocation); err != nil {
		return deserr.NewJSONError(err)
	}
	if primaryKey, primaryKeyLocation, ok := fields.Optional("primaryKey"); ok {
		if r.PrimaryKey, err = deserr.String(primaryKey, primaryKeyLocation); err != nil {
			return deserr.NewJSONError(err)
		}
	}
	return nil
}

// person reports through its own error type with domain specific codes.
type person struct {
	Name string
}

var (
	missingPersonName = weberrors.Code{Name: "missing_person_name", Type: weberrors.ErrorTypeInvalidRequest, HTTPStatusCode: http.StatusUnprocessableEntity}
	invalidPersonName = weberrors.Code{Name: "invalid_person_name", Type: weberrors.ErrorTypeInvalidRequest, HTTPStatusCode: http.StatusUnprocessableEntity}
)

type personError struct {
	cause *deserr.Error
}

func (e *personError) Error() string {
	return e.cause.Error()
}

func (e *personError) ResponseError() *weberrors.ResponseError {
	if e.cause.Kind == deserr.MissingField {
		return weberrors.NewResponseError(e.cause.Message, missingPersonName)
	}
	return weberrors.NewResponseError(e.cause.Message, invalidPersonName)
}

var personDeserializations atomic.Int64

func (p *person) DeserializeFromValue(value *fastjson.Value, location deserr.Location) *personError {
	personDeserializations.Add(1)

	fields, err := deserr.Object(value, location)
	if err != nil {
		return &personError{cause: err}
	}
	name, nameLocation, err := fields.Required("name")
	if err != nil {
		return &personError{cause: err}
	}
	if p.Name, err = deserr.String(name, nameLocation); err != nil {
		return &personError{cause: err}
	}
	return nil
}

type collectorFunc func(req *http.Request) (*fastjson.Value, error)

func (f collectorFunc) Collect(req *http.Request) (*fastjson.Value, error) {
	return f(req)
}

// unreported fails with an error that has no response representation.
type unreported struct{}

type unreportedError struct{}

func (e *unreportedError) Error() string {
	return "rejected without a response"
}

func (e *unreportedError) ResponseError() *weberrors.ResponseError {
	return nil
}

func (u *unreported) DeserializeFromValue(*fastjson.Value, deserr.Location) *unreportedError {
	return &unreportedError{}
}
