package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResponseError(t *testing.T) {
	t.Run("with message", func(t *testing.T) {
		err := NewResponseError("Missing field `name`", MissingField)

		assert.Equal(t, http.StatusBadRequest, err.HTTPStatusCode)
		assert.Equal(t, "Missing field `name`", err.Message)
		assert.Equal(t, "missing_field", err.Code)
		assert.Equal(t, ErrorTypeInvalidRequest, err.Type)
	})

	t.Run("empty message falls back", func(t *testing.T) {
		err := NewResponseError("", BadRequest)

		assert.Equal(t, "Invalid request", err.Message)
	})

	t.Run("internal", func(t *testing.T) {
		err := NewInternalResponse()

		assert.Equal(t, http.StatusInternalServerError, err.HTTPStatusCode)
		assert.Equal(t, ErrorTypeInternal, err.Type)
	})
}

func TestNewMalformedPayloadResponse(t *testing.T) {
	err := NewMalformedPayloadResponse(errors.New("cannot parse empty string"))

	assert.Equal(t, MalformedPayload.Name, err.Code)
	assert.Equal(t, http.StatusBadRequest, err.HTTPStatusCode)
	assert.Contains(t, err.Message, "cannot parse empty string")
	assert.Equal(t, "malformed_payload: "+err.Message, err.Error())
}

func TestResponseError_Render(t *testing.T) {
	err := NewResponseError("Invalid value type at `.name`", InvalidValueType)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rr := httptest.NewRecorder()

	require.NoError(t, render.Render(rr, req, err))

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, map[string]any{
		"message": "Invalid value type at `.name`",
		"code":    "invalid_value_type",
		"type":    "invalid_request",
	}, body)
}

func TestResponseError_ErrorCoder(t *testing.T) {
	var coder ErrorCoder = NewResponseError("boom", BadRequest)

	assert.Same(t, coder, coder.ResponseError())
}
