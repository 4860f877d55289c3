// FilePath: internal/hub/hub.go
package hub

import (
	"encoding/json"
	"time"

	nuts "github.com/vaudience/go-nuts"

	"github.com/AtulCoder09/Antigravity-AQI-System/internal/models"
	"github.com/AtulCoder09/Antigravity-AQI-System/internal/monitoring"
	"github.com/AtulCoder09/Antigravity-AQI-System/internal/scoring"
)

// Manual fan speed bounds accepted from dashboards.
const (
	minActuatorSetting = 0
	maxActuatorSetting = 255
)

// Hub multiplexes inbound frames from the edge device and from dashboards,
// scores telemetry, and fans results out to the right recipients. The
// registry is injected at construction; there is no process-wide singleton.
type Hub struct {
	registry    *Registry
	sendTimeout time.Duration
}

// New creates a hub around the given registry.
func New(registry *Registry, sendTimeout time.Duration) *Hub {
	return &Hub{
		registry:    registry,
		sendTimeout: sendTimeout,
	}
}

// Registry exposes the connection registry, mainly for tests and handlers.
func (h *Hub) Registry() *Registry {
	return h.registry
}

// RunDeviceLoop registers c as the edge device and processes its telemetry
// frames until the connection closes or reading fails. Frames from one
// connection are handled strictly in arrival order. The loop is the only
// place that unregisters this connection.
func (h *Hub) RunDeviceLoop(raw Conn) {
	c := newLockedConn(raw, h.sendTimeout)

	if evicted := h.registry.ConnectDevice(c); evicted != nil {
		nuts.L.Warnf("[Hub] New edge device connection replaces the existing one")
		evicted.Close()
	}
	monitoring.DeviceConnected.Set(1)
	nuts.L.Infof("[Hub] Edge device connected (%s)", c.RemoteAddr())

	defer func() {
		h.registry.DisconnectDevice(c)
		if _, ok := h.registry.Device(); !ok {
			monitoring.DeviceConnected.Set(0)
		}
		nuts.L.Infof("[Hub] Edge device disconnected")
	}()

	for {
		_, frame, err := c.ReadMessage()
		if err != nil {
			nuts.L.Debugf("[Hub] Edge device read ended: %v", err)
			return
		}
		monitoring.FramesReceived.WithLabelValues(monitoring.RoleDevice).Inc()

		var sample models.TelemetrySample
		if err := json.Unmarshal(frame, &sample); err != nil {
			monitoring.FramesRejected.WithLabelValues(monitoring.RoleDevice).Inc()
			nuts.L.Errorf("[Hub] Invalid JSON from edge device: %v", err)
			continue
		}
		h.handleTelemetry(sample)
	}
}

// handleTelemetry scores one sample, closes the actuation loop when the
// recommendation differs from the device's reported setting, and fans the
// combined payload out to all dashboards.
func (h *Hub) handleTelemetry(sample models.TelemetrySample) {
	insight := scoring.Score(sample)
	monitoring.ObserveInsight(insight)

	if insight.RecommendedSetting != int(sample.ActuatorSetting) {
		h.SendCommandToDevice(models.FanSpeedCommand(insight.RecommendedSetting))
	}

	h.BroadcastTelemetry(models.NewTelemetryPayload(sample, insight))
}

// RunDashboardLoop registers c as a dashboard and processes operator commands
// until the connection closes. Undecodable frames are dropped and the
// connection stays open; inbound decode policy is the same for both roles.
func (h *Hub) RunDashboardLoop(raw Conn) {
	c := newLockedConn(raw, h.sendTimeout)

	h.registry.ConnectDashboard(c)
	total := h.registry.DashboardCount()
	monitoring.ConnectedDashboards.Set(float64(total))
	nuts.L.Infof("[Hub] Dashboard connected (%s). Total: %d", c.RemoteAddr(), total)

	defer func() {
		h.registry.DisconnectDashboard(c)
		monitoring.ConnectedDashboards.Set(float64(h.registry.DashboardCount()))
		nuts.L.Infof("[Hub] Dashboard disconnected")
	}()

	for {
		_, frame, err := c.ReadMessage()
		if err != nil {
			nuts.L.Debugf("[Hub] Dashboard read ended: %v", err)
			return
		}
		monitoring.FramesReceived.WithLabelValues(monitoring.RoleDashboard).Inc()

		var cmd models.DashboardCommand
		if err := json.Unmarshal(frame, &cmd); err != nil {
			monitoring.FramesRejected.WithLabelValues(monitoring.RoleDashboard).Inc()
			nuts.L.Errorf("[Hub] Invalid JSON from dashboard: %v", err)
			continue
		}
		h.handleDashboardCommand(cmd)
	}
}

func (h *Hub) handleDashboardCommand(cmd models.DashboardCommand) {
	switch cmd.Command {
	case models.DashboardCommandCalibrate:
		nuts.L.Infof("[Hub] Triggering calibration mode on edge device")
		h.SendCommandToDevice(models.CalibrateCommand())
	case models.DashboardCommandManualFan:
		speed := clampSetting(cmd.Speed)
		if speed != cmd.Speed {
			nuts.L.Warnf("[Hub] Manual fan speed %d out of range, clamped to %d", cmd.Speed, speed)
		}
		h.SendCommandToDevice(models.FanSpeedCommand(speed))
	default:
		nuts.L.Warnf("[Hub] Ignoring unknown dashboard command %q", cmd.Command)
	}
}

func clampSetting(speed int) int {
	if speed < minActuatorSetting {
		return minActuatorSetting
	}
	if speed > maxActuatorSetting {
		return maxActuatorSetting
	}
	return speed
}
