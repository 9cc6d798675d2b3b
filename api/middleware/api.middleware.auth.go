// FilePath: api/middleware/api.middleware.auth.go
package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/schema"

	"github.com/avamo13/lastseen/internal/errors"
)

// GuardConfig carries the shared secret for the read endpoints.
type GuardConfig struct {
	APIKey string
}

// Guard admits or rejects callers based on a single shared secret.
// The secret is injected once at construction; the guard never reads
// the environment itself.
type Guard struct {
	config  GuardConfig
	decoder *schema.Decoder
}

// keyQuery is the decoded form of the credential query parameter.
type keyQuery struct {
	APIKey string `schema:"api_key"`
}

// NewGuard creates a guard for the given configuration.
func NewGuard(config GuardConfig) *Guard {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)

	return &Guard{
		config:  config,
		decoder: decoder,
	}
}

// Authorize reports whether the supplied credential exactly equals the
// configured secret. Plain string comparison: no hashing, no lockout,
// any number of attempts is permitted. With no secret configured only
// an empty credential matches, so every real request is rejected.
func (g *Guard) Authorize(supplied string) bool {
	return supplied == g.config.APIKey
}

// RequireKey gates a route on the api_key query parameter and rejects
// with 403 on mismatch. The response never hints at the correct value.
func (g *Guard) RequireKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var q keyQuery
		if err := g.decoder.Decode(&q, r.URL.Query()); err != nil {
			handleError(w, errors.NewAuthorizationError("invalid api key", err))
			return
		}

		if !g.Authorize(q.APIKey) {
			handleError(w, errors.NewAuthorizationError("invalid api key", nil))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func handleError(w http.ResponseWriter, err error) {
	if apiErr, ok := err.(*errors.APIError); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(apiErr.Code)
		json.NewEncoder(w).Encode(apiErr)
		return
	}
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
