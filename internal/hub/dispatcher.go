// FilePath: internal/hub/dispatcher.go
package hub

import (
	nuts "github.com/vaudience/go-nuts"

	"github.com/AtulCoder09/Antigravity-AQI-System/internal/models"
	"github.com/AtulCoder09/Antigravity-AQI-System/internal/monitoring"
)

// BroadcastTelemetry delivers one payload to every currently registered
// dashboard. Delivery is best effort: each recipient gets exactly one send
// attempt, and one recipient's failure never blocks the rest. A failed send
// does not unregister the recipient; its own receive loop observes the
// disconnect and tears the connection down.
func (h *Hub) BroadcastTelemetry(payload models.TelemetryPayload) {
	for _, dash := range h.registry.Dashboards() {
		if err := dash.WriteJSON(payload); err != nil {
			monitoring.BroadcastFailures.Inc()
			nuts.L.Errorf("[Dispatcher] Error sending to dashboard %s: %v", dash.RemoteAddr(), err)
		}
	}
}

// SendCommandToDevice sends one command frame to the edge device. An absent
// device is a warning, not an error: the caller's processing continues
// either way.
func (h *Hub) SendCommandToDevice(cmd models.DeviceCommand) {
	device, ok := h.registry.Device()
	if !ok {
		nuts.L.Warnf("[Dispatcher] Edge device not connected. Cannot send command.")
		return
	}
	if err := device.WriteJSON(cmd); err != nil {
		nuts.L.Errorf("[Dispatcher] Error sending to edge device: %v", err)
		return
	}
	monitoring.CommandsSent.WithLabelValues(cmd.Kind()).Inc()
	nuts.L.Infof("[Dispatcher] Command sent to edge device: %s", cmd.Kind())
}
