// Package deserr defines how domain types build themselves from a parsed JSON
// value and how they report what was wrong with it.
//
// A type takes part by implementing DeserializeFromValue on its pointer:
//
//	func (r *CreateIndexRequest) DeserializeFromValue(value *fastjson.Value, location deserr.Location) *deserr.JSONError {
//		fields, err := deserr.Object(value, location)
//		if err != nil {
//			return deserr.NewJSONError(err)
//		}
//		uid, uidLocation, err := fields.Required("uid")
//		if err != nil {
//			return deserr.NewJSONError(err)
//		}
//		if r.UID, err = deserr.String(uid, uidLocation); err != nil {
//			return deserr.NewJSONError(err)
//		}
//		return nil
//	}
//
// The error type is chosen by the domain type. Anything comparable that is an
// error and can render itself as a *errors.ResponseError will do; JSONError is
// provided for types that are happy with the generic codes.
package deserr
