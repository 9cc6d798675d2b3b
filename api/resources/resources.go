// FilePath: api/resources/resources.go
package resources

import (
	"encoding/json"
	"net/http"

	nuts "github.com/vaudience/go-nuts"

	"github.com/avamo13/lastseen/internal/errors"
	"github.com/avamo13/lastseen/internal/relay"
	"github.com/avamo13/lastseen/internal/viewer"
)

// Resources holds all HTTP resource handlers
type Resources struct {
	Location    *LocationHandlers
	Connection  *ConnectionHandlers
	Viewer      *ViewerHandlers
	HealthCheck func(w http.ResponseWriter, r *http.Request)
}

// NewResources creates a new Resources instance
func NewResources(svc *relay.RelayService, pages *viewer.Pages, authorize func(string) bool) *Resources {
	return &Resources{
		Location:   &LocationHandlers{relay: svc},
		Connection: &ConnectionHandlers{relay: svc},
		Viewer:     &ViewerHandlers{pages: pages, authorize: authorize, decoder: newFormDecoder()},
	}
}

// SetHealthCheck sets the health check handler
func (r *Resources) SetHealthCheck(h func(w http.ResponseWriter, r *http.Request)) {
	r.HealthCheck = h
}

// updateResponse is the envelope returned by the update endpoints,
// wire-compatible with the original relay.
type updateResponse struct {
	Status string `json:"status"`
	Stored any    `json:"stored"`
}

// Helper functions

func respondWithError(w http.ResponseWriter, err *errors.APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.Code)
	json.NewEncoder(w).Encode(err)
	nuts.L.Errorf("[API] %s", err.Error())
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}
