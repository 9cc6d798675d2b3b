package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	g := NewGuard(GuardConfig{APIKey: "sesame"})

	assert.True(t, g.Authorize("sesame"))
	assert.False(t, g.Authorize("Sesame"))
	assert.False(t, g.Authorize("sesame "))
	assert.False(t, g.Authorize(""))
}

func TestAuthorizeEmptySecret(t *testing.T) {
	g := NewGuard(GuardConfig{})

	// Degenerate case: an unset secret matches only an empty credential.
	assert.True(t, g.Authorize(""))
	assert.False(t, g.Authorize("anything"))
}

func TestRequireKey(t *testing.T) {
	g := NewGuard(GuardConfig{APIKey: "sesame"})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := g.RequireKey(next)

	tests := []struct {
		name string
		url  string
		code int
	}{
		{"correct key", "/location?api_key=sesame", http.StatusOK},
		{"wrong key", "/location?api_key=nope", http.StatusForbidden},
		{"missing key", "/location", http.StatusForbidden},
		{"empty key", "/location?api_key=", http.StatusForbidden},
		{"extra params ignored", "/location?api_key=sesame&foo=bar", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestRequireKeyLeaksNothing(t *testing.T) {
	g := NewGuard(GuardConfig{APIKey: "sesame"})
	handler := g.RequireKey(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/location?api_key=guess", nil))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.NotContains(t, rec.Body.String(), "sesame")
}
