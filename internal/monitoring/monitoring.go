// FilePath: internal/monitoring/monitoring.go
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/AtulCoder09/Antigravity-AQI-System/internal/models"
)

// Connection roles used as metric labels.
const (
	RoleDevice    = "device"
	RoleDashboard = "dashboard"
)

// Total frames received, labeled by connection role
var FramesReceived = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "aqi_frames_received_total",
		Help: "The total number of inbound frames received per connection role",
	},
	[]string{"role"},
)

// Frames dropped because their payload could not be decoded
var FramesRejected = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "aqi_frames_rejected_total",
		Help: "The total number of inbound frames dropped as undecodable",
	},
	[]string{"role"},
)

// Commands dispatched to the edge device, labeled by command kind
var CommandsSent = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "aqi_device_commands_total",
		Help: "The total number of commands dispatched to the edge device",
	},
	[]string{"kind"},
)

// Per-recipient send failures during dashboard fan-out
var BroadcastFailures = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "aqi_broadcast_send_failures_total",
		Help: "The total number of per-dashboard send failures during fan-out",
	},
)

// Currently connected dashboards
var ConnectedDashboards = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "aqi_connected_dashboards",
		Help: "Number of dashboard connections currently registered",
	},
)

// Whether the edge device is currently connected (0 or 1)
var DeviceConnected = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "aqi_device_connected",
		Help: "Whether the edge device connection slot is occupied",
	},
)

var AQIHistogram = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Name: "aqi_aggregate_index",
		Help: "Distribution of computed aggregate AQI values",
		// EPA category boundaries
		Buckets: []float64{50, 100, 150, 200, 300, 500},
	},
)

var RiskHistogram = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Name: "aqi_risk_score",
		Help: "Distribution of computed risk scores",
		// Warning at 200, critical at 500
		Buckets: []float64{50, 100, 200, 500, 1000, 2000},
	},
)

// ObserveInsight records the scoring output of one telemetry frame.
func ObserveInsight(insight models.InsightRecord) {
	AQIHistogram.Observe(insight.AggregateIndex)
	RiskHistogram.Observe(insight.RiskScore)
}
