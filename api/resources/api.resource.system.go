// FilePath: api/resources/api.resource.system.go
package resources

import (
	"net/http"

	"github.com/gorilla/schema"
	nuts "github.com/vaudience/go-nuts"

	"github.com/AtulCoder09/Antigravity-AQI-System/api/middleware"
	"github.com/AtulCoder09/Antigravity-AQI-System/internal/errors"
	"github.com/AtulCoder09/Antigravity-AQI-System/internal/models"
	"github.com/AtulCoder09/Antigravity-AQI-System/internal/scoring"
)

var queryDecoder = newQueryDecoder()

func newQueryDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

// SystemHandlers serves the liveness probe and the score preview.
type SystemHandlers struct{}

// HealthCheck reports service liveness.
func (h *SystemHandlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": nuts.GetVersion(),
	})
}

// ScorePreview runs the scoring function on channel readings supplied as
// query parameters and returns the insight record. Missing channels default
// to zero, exactly as on the device stream.
func (h *SystemHandlers) ScorePreview(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	if err := r.ParseForm(); err != nil {
		respondWithError(w, errors.NewValidationError("invalid query string", err).WithRequestID(requestID))
		return
	}

	var sample models.TelemetrySample
	if err := queryDecoder.Decode(&sample, r.Form); err != nil {
		respondWithError(w, errors.NewDecodeError("invalid telemetry parameters", err).WithRequestID(requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, scoring.Score(sample))
}
