package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	weberrors "github.com/Roshick/go-autumn-payload/errors"
	"github.com/Roshick/go-autumn-payload/header"
	"github.com/stretchr/testify/require"
)

type TestResponse struct {
	Status int         `json:"status"`
	Header http.Header `json:"header"`
	Body   any         `json:"body,omitempty"`
}

func (r *TestResponse) RequireEqualStatus(t *testing.T, status int) *TestResponse {
	require.Equal(t, status, r.Status)
	return r
}

func (r *TestResponse) RequireEqualBody(t *testing.T, body any) *TestResponse {
	require.Equal(t, body, r.Body)
	return r
}

// NewJSONRequest builds a server-side request carrying body as application/json.
func NewJSONRequest(method string, target string, body string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set(header.ContentType, header.MediaTypeJSON)
	return req
}

func MustParseResponse(t *testing.T, res *http.Response) *TestResponse {
	t.Helper()
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %s", err)
	}

	var parsedBody any
	switch {
	case strings.HasPrefix(res.Header.Get(header.ContentType), header.MediaTypeJSON):
		if err = json.Unmarshal(body, &parsedBody); err != nil {
			t.Fatalf("failed to parse response: %s", err)
		}
	case len(body) > 0:
		parsedBody = string(body)
	}

	return &TestResponse{
		Status: res.StatusCode,
		Header: res.Header,
		Body:   parsedBody,
	}
}

// MustParseErrorResponse decodes a rendered *errors.ResponseError.
func MustParseErrorResponse(t *testing.T, res *http.Response) *weberrors.ResponseError {
	t.Helper()
	defer res.Body.Close()

	responseErr := &weberrors.ResponseError{}
	if err := json.NewDecoder(res.Body).Decode(responseErr); err != nil {
		t.Fatalf("failed to parse error response: %s", err)
	}
	responseErr.HTTPStatusCode = res.StatusCode
	return responseErr
}
