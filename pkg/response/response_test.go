package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, "Doctor created successfully")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, Response{Status: StatusSuccess, Message: "Doctor created successfully"}, decode(t, rec))
}

func TestValidationError_EnumeratesFieldsInOrder(t *testing.T) {
	rec := httptest.NewRecorder()
	ValidationError(rec, map[string]string{
		"title":       "title is required",
		"description": "description is required",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, StatusError, body.Status)
	assert.Equal(t, "Validation failed: description: description is required; title: title is required", body.Message)
	assert.Len(t, body.Errors, 2)
}

func TestErrorHelpersUseDefaults(t *testing.T) {
	rec := httptest.NewRecorder()
	NotFound(rec, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Resource not found", decode(t, rec).Message)

	rec = httptest.NewRecorder()
	InternalServerError(rec, "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = httptest.NewRecorder()
	BadRequest(rec, "Invalid request body")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request body", decode(t, rec).Message)
}
