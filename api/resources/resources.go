// FilePath: api/resources/resources.go
package resources

import (
	"encoding/json"
	"net/http"

	nuts "github.com/vaudience/go-nuts"

	"github.com/AtulCoder09/Antigravity-AQI-System/internal/errors"
	"github.com/AtulCoder09/Antigravity-AQI-System/internal/hub"
)

// Resources holds all HTTP resource handlers
type Resources struct {
	System  *SystemHandlers
	Streams *StreamHandlers
}

// NewResources creates a new Resources instance
func NewResources(h *hub.Hub, maxMessageSize int64) *Resources {
	return &Resources{
		System:  &SystemHandlers{},
		Streams: NewStreamHandlers(h, maxMessageSize),
	}
}

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
