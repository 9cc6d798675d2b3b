package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORSPreflightAllowsAnyHeader(t *testing.T) {
	handler := corsHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("preflight must not reach the next handler")
	}))

	req := httptest.NewRequest(http.MethodOptions, "/location", nil)
	req.Header.Set("Origin", "https://viewer.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	req.Header.Set("Access-Control-Request-Headers", "X-Custom-Header")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://viewer.example", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "X-Custom-Header")
}

func TestCORSEchoesOriginForCredentialedRequests(t *testing.T) {
	handlerCalled := false
	handler := corsHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/location?api_key=secret", nil)
	req.Header.Set("Origin", "https://anywhere.example")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.True(t, handlerCalled)
	// Browsers refuse a literal "*" when credentials are allowed, so
	// the request origin must be echoed back verbatim.
	assert.Equal(t, "https://anywhere.example", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORSAllowsArbitraryOrigins(t *testing.T) {
	handler := corsHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for _, origin := range []string{"http://localhost:3000", "https://deep.sub.domain.example", "null"} {
		req := httptest.NewRequest(http.MethodGet, "/connection?api_key=secret", nil)
		req.Header.Set("Origin", origin)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, origin, rec.Header().Get("Access-Control-Allow-Origin"), "origin %q", origin)
	}
}
