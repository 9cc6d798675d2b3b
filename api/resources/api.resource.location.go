// FilePath: api/resources/api.resource.location.go
package resources

import (
	"encoding/json"
	"net/http"

	nuts "github.com/vaudience/go-nuts"

	"github.com/avamo13/lastseen/internal/errors"
	"github.com/avamo13/lastseen/internal/models"
	"github.com/avamo13/lastseen/internal/relay"
)

// LocationHandlers encapsulates the location-related HTTP handlers
type LocationHandlers struct {
	relay *relay.RelayService
}

// @Summary Report the current location
// @Description Store a location update as the new last-known location
// @Tags location
// @Accept json
// @Produce json
// @Param update body models.LocationUpdate true "Location update"
// @Success 200 {object} models.LocationReport
// @Failure 400 {object} errors.APIError
// @Router /update/location [post]
func (h *LocationHandlers) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	var update models.LocationUpdate
	requestID := nuts.NID("req", 12)

	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}

	report, err := h.relay.IngestLocation(r.Context(), update)
	if err != nil {
		if apiErr, ok := err.(*errors.APIError); ok {
			respondWithError(w, apiErr.WithRequestID(requestID))
			return
		}
		respondWithError(w, errors.NewInternalError("failed to store location", err).WithRequestID(requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, updateResponse{Status: "success", Stored: report})
}

// @Summary Get the last known location
// @Description Get the most recently reported location
// @Tags location
// @Produce json
// @Param api_key query string true "Access key"
// @Success 200 {object} models.LocationReport
// @Failure 403 {object} errors.APIError
// @Failure 404 {object} errors.APIError
// @Router /location [get]
func (h *LocationHandlers) GetLocation(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	report, err := h.relay.LastLocation(r.Context())
	if err != nil {
		if apiErr, ok := err.(*errors.APIError); ok {
			respondWithError(w, apiErr.WithRequestID(requestID))
			return
		}
		respondWithError(w, errors.NewInternalError("failed to read location", err).WithRequestID(requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, report)
}
