package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/bookshelf-api/internal/api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceMiddlewareAttachesTraceID(t *testing.T) {
	var seenTraceID string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenTraceID = shared.GetTraceID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	w := httptest.NewRecorder()
	TraceMiddleware(inner).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, seenTraceID, "handlers must see a trace ID in the context")
}

func TestTraceMiddlewareUniquePerRequest(t *testing.T) {
	ids := make(map[string]bool)
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ids[shared.GetTraceID(r.Context())] = true
	})
	handler := TraceMiddleware(inner)

	for i := 0; i < 10; i++ {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	}

	assert.Len(t, ids, 10, "each request gets its own trace ID")
}

func TestCORSMiddlewareSetsHeaders(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	w := httptest.NewRecorder()
	CORSMiddleware(inner).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "DELETE")
}

func TestCORSMiddlewareAnswersPreflight(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("preflight requests must not reach the handler")
	})

	w := httptest.NewRecorder()
	CORSMiddleware(inner).ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/books", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRecoverMiddlewareProducesEnvelope(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("unexpected state")
	})

	w := httptest.NewRecorder()
	RecoverMiddleware(inner).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var env shared.ErrorEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env),
		"a panic must still produce a JSON error envelope")
	assert.Equal(t, http.StatusInternalServerError, env.Error.Code)
	assert.Equal(t, "Internal server error", env.Error.Message)
	assert.Equal(t, []string{"unexpected state"}, env.Error.Details)
}

func TestRecoverMiddlewarePassesThroughNormally(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	w := httptest.NewRecorder()
	RecoverMiddleware(inner).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, w.Code)
}
