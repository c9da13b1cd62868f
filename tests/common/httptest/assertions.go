//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"groomer-crm/internal/handler/dto/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// AssertSuccessResponse checks the status and, for 2xx with a non-nil target,
// decodes the body into it.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "response: %s", w.Body.String()) {
		return
	}
	if target != nil && w.Code >= 200 && w.Code < 300 {
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "decode response: %s", w.Body.String())
	}
}

// AssertErrorResponse checks the status and that error.message contains
// expectedMsg. An empty expectedMsg only checks the envelope shape.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "response: %s", w.Body.String())

	var body errorBody
	if !assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "decode error envelope: %s", w.Body.String()) {
		return
	}
	if expectedMsg != "" {
		assert.Contains(t, body.Error.Message, expectedMsg)
	}
}

// AssertConflict checks a 409 from the conflict checker and returns its detail.
func AssertConflict(t *testing.T, w *httptest.ResponseRecorder, petName string) response.ConflictDetail {
	t.Helper()

	AssertErrorResponse(t, w, http.StatusConflict, "conflicts with "+petName+"'s appointment")

	var body struct {
		Detail *response.ConflictDetail `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Detail, "409 without conflict detail: %s", w.Body.String())
	assert.Equal(t, petName, body.Detail.PetName)
	return *body.Detail
}

// AssertHeaders compares each header. An empty expected value means absent.
func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for name, want := range expected {
		if want == "" {
			assert.Empty(t, w.Header().Values(name), "header %s should be absent", name)
			continue
		}
		assert.Equal(t, want, w.Header().Get(name), "header %s", name)
	}
}
