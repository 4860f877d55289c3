// FilePath: api/resources/api.resource.streams.go
package resources

import (
	"net/http"

	"github.com/gorilla/websocket"
	nuts "github.com/vaudience/go-nuts"

	"github.com/AtulCoder09/Antigravity-AQI-System/internal/hub"
)

// StreamHandlers upgrades the two websocket endpoints and hands each accepted
// connection to the hub. The handler goroutine runs the connection's receive
// loop for its whole lifetime, one goroutine per connection.
type StreamHandlers struct {
	hub            *hub.Hub
	upgrader       websocket.Upgrader
	maxMessageSize int64
}

// NewStreamHandlers creates the websocket handlers for both roles.
func NewStreamHandlers(h *hub.Hub, maxMessageSize int64) *StreamHandlers {
	return &StreamHandlers{
		hub:            h,
		maxMessageSize: maxMessageSize,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Dashboards and devices connect from anywhere on the local
			// network; origin policy lives in the CORS layer.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// EdgeNode accepts the single sensor/actuator device stream.
func (h *StreamHandlers) EdgeNode(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		nuts.L.Errorf("[Streams] Edge device upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(h.maxMessageSize)
	h.hub.RunDeviceLoop(conn)
}

// Dashboard accepts one observer/operator stream.
func (h *StreamHandlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		nuts.L.Errorf("[Streams] Dashboard upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(h.maxMessageSize)
	h.hub.RunDashboardLoop(conn)
}
