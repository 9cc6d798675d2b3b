// FilePath: api/api.router.go
package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/avamo13/lastseen/api/middleware"
	"github.com/avamo13/lastseen/api/resources"
	"github.com/avamo13/lastseen/internal/relay"
	"github.com/avamo13/lastseen/internal/viewer"
)

type Router struct {
	router    *mux.Router
	guard     *middleware.Guard
	resources *resources.Resources
}

func NewRouter(svc *relay.RelayService, pages *viewer.Pages, guardConfig middleware.GuardConfig) *Router {
	guard := middleware.NewGuard(guardConfig)
	r := &Router{
		router:    mux.NewRouter(),
		guard:     guard,
		resources: resources.NewResources(svc, pages, guard.Authorize),
	}

	r.setupRoutes()
	return r
}

func (r *Router) setupRoutes() {
	// Write path: the reporting client is not gated, matching the
	// original deployment where the reverse proxy shields it.
	r.router.HandleFunc("/update/location", r.resources.Location.UpdateLocation).Methods(http.MethodPost)
	r.router.HandleFunc("/update/connection", r.resources.Connection.UpdateConnection).Methods(http.MethodPost)

	// Read path: every read goes through the access guard.
	protected := r.router.PathPrefix("").Subrouter()
	protected.Use(r.guard.RequireKey)
	protected.HandleFunc("/location", r.resources.Location.GetLocation).Methods(http.MethodGet)
	protected.HandleFunc("/connection", r.resources.Connection.GetConnection).Methods(http.MethodGet)

	// Viewer pages
	r.router.HandleFunc("/", r.resources.Viewer.LoginPage).Methods(http.MethodGet)
	r.router.HandleFunc("/", r.resources.Viewer.SubmitKey).Methods(http.MethodPost)
}

// SetHealthCheck registers the health handler on the router.
func (r *Router) SetHealthCheck(h func(w http.ResponseWriter, req *http.Request)) {
	r.resources.SetHealthCheck(h)
	r.router.HandleFunc("/health", h).Methods(http.MethodGet)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}
