package errors

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIErrorImplementsError(t *testing.T) {
	err := New(http.StatusNotFound, "NOT_FOUND", "instrument not found")
	assert.Equal(t, "instrument not found", err.Error())
}

func TestRespondWritesEnvelope(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/instruments/XXX", nil)
	rec := httptest.NewRecorder()

	Respond(rec, req, NotFoundError("instrument"))

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "NOT_FOUND", body["error_code"])
	assert.Equal(t, "instrument not found", body["message"])
	assert.Equal(t, "instrument", body["details"])
}

func TestRespondHidesPlainErrors(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	Respond(rec, req, stderrors.New("sql: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "sql")
}

func TestValidationErrorDetails(t *testing.T) {
	err := ErrValidation("buy", "date must be YYYY-MM-DD")
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)

	details, ok := err.Details.(ValidationError)
	require.True(t, ok)
	assert.Equal(t, "buy", details.Field)
}
