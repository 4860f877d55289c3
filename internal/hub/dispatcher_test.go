// FilePath: internal/hub/dispatcher_test.go
package hub

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/AtulCoder09/Antigravity-AQI-System/internal/models"
	"github.com/AtulCoder09/Antigravity-AQI-System/internal/monitoring"
)

func newTestHub() *Hub {
	return New(NewRegistry(), time.Second)
}

func TestBroadcastIsolatesRecipientFailure(t *testing.T) {
	h := newTestHub()
	first, second, third := newFakeConn(), newFakeConn(), newFakeConn()
	second.writeErr = errors.New("connection reset")

	h.Registry().ConnectDashboard(first)
	h.Registry().ConnectDashboard(second)
	h.Registry().ConnectDashboard(third)

	failuresBefore := testutil.ToFloat64(monitoring.BroadcastFailures)

	payload := models.NewTelemetryPayload(models.TelemetrySample{MQ9: 100}, models.InsightRecord{})
	h.BroadcastTelemetry(payload)

	if got := len(first.sent()); got != 1 {
		t.Fatalf("first dashboard got %d frames, want 1", got)
	}
	if got := len(third.sent()); got != 1 {
		t.Fatalf("third dashboard got %d frames, want 1", got)
	}
	if got := len(second.sent()); got != 0 {
		t.Fatalf("failing dashboard recorded %d frames, want 0", got)
	}

	// The failed recipient stays registered; teardown belongs to its own loop.
	if h.Registry().DashboardCount() != 3 {
		t.Fatalf("broadcast must not unregister a failing dashboard")
	}
	if delta := testutil.ToFloat64(monitoring.BroadcastFailures) - failuresBefore; delta != 1 {
		t.Fatalf("broadcast failure counter delta = %v, want 1", delta)
	}
}

func TestSendCommandWithoutDevice(t *testing.T) {
	h := newTestHub()

	// Must log a warning and return normally; nothing to assert beyond the
	// absence of a panic and of registry changes.
	h.SendCommandToDevice(models.FanSpeedCommand(128))

	if _, ok := h.Registry().Device(); ok {
		t.Fatalf("no device should be registered")
	}
}

func TestSendCommandToDevice(t *testing.T) {
	h := newTestHub()
	device := newFakeConn()
	h.Registry().ConnectDevice(device)

	h.SendCommandToDevice(models.FanSpeedCommand(200))
	h.SendCommandToDevice(models.CalibrateCommand())

	sent := device.sent()
	if len(sent) != 2 {
		t.Fatalf("device got %d frames, want 2", len(sent))
	}
	fan, ok := sent[0].(models.DeviceCommand)
	if !ok || fan.ActuatorSetting == nil || *fan.ActuatorSetting != 200 {
		t.Fatalf("unexpected fan command: %+v", sent[0])
	}
	calibrate, ok := sent[1].(models.DeviceCommand)
	if !ok || calibrate.Command != models.CommandCalibrate {
		t.Fatalf("unexpected calibrate command: %+v", sent[1])
	}
}

func TestSendCommandDeviceWriteFailure(t *testing.T) {
	h := newTestHub()
	device := newFakeConn()
	device.writeErr = errors.New("broken pipe")
	h.Registry().ConnectDevice(device)

	// Send failures are logged, never propagated, and never unregister.
	h.SendCommandToDevice(models.CalibrateCommand())

	if _, ok := h.Registry().Device(); !ok {
		t.Fatalf("send failure must not unregister the device")
	}
}
