// FilePath: api/resources/api.resource.connection.go
package resources

import (
	"encoding/json"
	"net/http"

	nuts "github.com/vaudience/go-nuts"

	"github.com/avamo13/lastseen/internal/errors"
	"github.com/avamo13/lastseen/internal/models"
	"github.com/avamo13/lastseen/internal/relay"
)

// ConnectionHandlers encapsulates the connectivity-heartbeat HTTP handlers
type ConnectionHandlers struct {
	relay *relay.RelayService
}

// @Summary Report a connectivity heartbeat
// @Description Store a heartbeat as the new last-known connection time
// @Tags connection
// @Accept json
// @Produce json
// @Param update body models.ConnectionUpdate true "Connection update"
// @Success 200 {object} models.ConnectionReport
// @Failure 400 {object} errors.APIError
// @Router /update/connection [post]
func (h *ConnectionHandlers) UpdateConnection(w http.ResponseWriter, r *http.Request) {
	var update models.ConnectionUpdate
	requestID := nuts.NID("req", 12)

	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}

	report, err := h.relay.IngestConnection(r.Context(), update)
	if err != nil {
		respondWithError(w, errors.NewInternalError("failed to store heartbeat", err).WithRequestID(requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, updateResponse{Status: "success", Stored: report})
}

// @Summary Get the last connectivity heartbeat
// @Description Get the most recently reported heartbeat
// @Tags connection
// @Produce json
// @Param api_key query string true "Access key"
// @Success 200 {object} models.ConnectionReport
// @Failure 403 {object} errors.APIError
// @Failure 404 {object} errors.APIError
// @Router /connection [get]
func (h *ConnectionHandlers) GetConnection(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	report, err := h.relay.LastConnection(r.Context())
	if err != nil {
		if apiErr, ok := err.(*errors.APIError); ok {
			respondWithError(w, apiErr.WithRequestID(requestID))
			return
		}
		respondWithError(w, errors.NewInternalError("failed to read heartbeat", err).WithRequestID(requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, report)
}
