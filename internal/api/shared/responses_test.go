package shared

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewErrorResponse(t *testing.T) {
	t.Run("basic envelope", func(t *testing.T) {
		env := NewErrorResponse(404, "Book not found")

		assert.Equal(t, 404, env.Error.Code)
		assert.Equal(t, "Book not found", env.Error.Message)
		assert.NotNil(t, env.Error.Details, "Details must never be nil")
		assert.Empty(t, env.Error.Details)
	})

	t.Run("single detail becomes one-element list", func(t *testing.T) {
		env := NewErrorResponse(500, "Internal server error", "boom")

		assert.Equal(t, []string{"boom"}, env.Error.Details)
	})

	t.Run("empty details are dropped", func(t *testing.T) {
		env := NewErrorResponse(400, "Bad Request", "", "first", "", "second")

		assert.Equal(t, []string{"first", "second"}, env.Error.Details)
	})

	t.Run("serializes with the stable wire shape", func(t *testing.T) {
		env := NewErrorResponse(400, "Validation Failed", "Title is required and must be a non-empty string")

		data, err := json.Marshal(env)
		require.NoError(t, err)
		assert.JSONEq(t,
			`{"error":{"code":400,"message":"Validation Failed","details":["Title is required and must be a non-empty string"]}}`,
			string(data))
	})

	t.Run("no details serializes as empty array, not null", func(t *testing.T) {
		data, err := json.Marshal(NewErrorResponse(404, "Resource not found"))
		require.NoError(t, err)
		assert.Contains(t, string(data), `"details":[]`)
	})
}

func TestRespondWithJSON(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/books", nil)

	RespondWithJSON(w, r, http.StatusOK, map[string]string{"hello": "world"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"hello":"world"}`, w.Body.String())
}

func TestRespondWithError(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/books/missing", nil)

	RespondWithError(w, r, http.StatusNotFound, "Book with ID 'missing' not found")

	assert.Equal(t, http.StatusNotFound, w.Code)

	var env ErrorEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, http.StatusNotFound, env.Error.Code)
	assert.Equal(t, "Book with ID 'missing' not found", env.Error.Message)
	assert.Empty(t, env.Error.Details)
}
