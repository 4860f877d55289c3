// FilePath: internal/models/models.telemetry.go
package models

// TelemetrySample is one batch of raw channel readings reported by the edge
// device. All channels are optional on the wire; a missing channel decodes to
// zero. The sample lives for exactly one message-handling cycle and is never
// persisted.
type TelemetrySample struct {
	MQ135           float64 `json:"mq135" schema:"mq135"`
	MQ8             float64 `json:"mq8" schema:"mq8"`
	MQ9             float64 `json:"mq9" schema:"mq9"`
	Dust            float64 `json:"dust" schema:"dust"`
	Temperature     float64 `json:"temperature" schema:"temperature"`
	Humidity        float64 `json:"humidity" schema:"humidity"`
	ActuatorSetting float64 `json:"actuator_setting" schema:"actuator_setting"`
}

// Status is the overall condition derived from a sample's risk score.
type Status string

const (
	StatusNormal   Status = "Normal"
	StatusWarning  Status = "WARNING: Poor Air Quality"
	StatusCritical Status = "CRITICAL: Hazard Detected"
)

// AQICategory labels the aggregate index on the 0-500 EPA scale.
type AQICategory string

const (
	AQIGood               AQICategory = "Good"
	AQIModerate           AQICategory = "Moderate"
	AQIUnhealthySensitive AQICategory = "Unhealthy (Sensitive)"
	AQIUnhealthy          AQICategory = "Unhealthy"
	AQIVeryUnhealthy      AQICategory = "Very Unhealthy"
	AQIHazardous          AQICategory = "Hazardous"
)

// InsightRecord is the scoring output derived from exactly one TelemetrySample.
type InsightRecord struct {
	Anomaly            bool        `json:"anomaly"`
	Status             Status      `json:"status"`
	RiskScore          float64     `json:"risk_score"`
	RecommendedSetting int         `json:"recommended_actuator_setting"`
	AggregateIndex     float64     `json:"aggregate_index"`
	AggregateCategory  AQICategory `json:"aggregate_category"`
	Temperature        float64     `json:"temperature"`
	Humidity           float64     `json:"humidity"`
}

// PayloadTypeTelemetry marks a dashboard frame carrying sensors + insights.
const PayloadTypeTelemetry = "telemetry"

// TelemetryPayload is the frame fanned out to every connected dashboard.
type TelemetryPayload struct {
	Type     string          `json:"type"`
	Sensors  TelemetrySample `json:"sensors"`
	Insights InsightRecord   `json:"insights"`
}

// NewTelemetryPayload pairs a sample with its insight for broadcast.
func NewTelemetryPayload(sample TelemetrySample, insights InsightRecord) TelemetryPayload {
	return TelemetryPayload{
		Type:     PayloadTypeTelemetry,
		Sensors:  sample,
		Insights: insights,
	}
}
