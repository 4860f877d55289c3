// FilePath: internal/scoring/scoring.go
package scoring

import (
	"math"

	"github.com/AtulCoder09/Antigravity-AQI-System/internal/models"
)

// Heuristic stand-in for a trained anomaly model. The weights favor MQ9
// (combustible gas / CO) as the most dangerous channel.
const (
	fullScaleReading = 4095.0 // 12-bit ADC ceiling on the edge device
	maxIndex         = 500.0

	warningRiskThreshold  = 200.0
	criticalRiskThreshold = 500.0
)

// Recommended actuator drive levels per status.
const (
	FanOff  = 0
	FanHalf = 128
	FanFull = 255
)

// Score maps one telemetry sample to its derived insight record. It is pure,
// deterministic and total: channels missing from the frame decode to zero and
// score as zero.
func Score(sample models.TelemetrySample) models.InsightRecord {
	risk := 0.1*sample.MQ135 + 0.2*sample.MQ8 + 0.5*sample.MQ9 + 0.2*sample.Dust

	// Weighted average of per-channel sub-indices, scaled to the 0-500 EPA
	// AQI range.
	aggregate := 0.30*subIndex(sample.MQ135) +
		0.35*subIndex(sample.MQ9) +
		0.20*subIndex(sample.Dust) +
		0.15*subIndex(sample.MQ8)
	aggregate = roundTo(clamp(aggregate, 0, maxIndex), 1)

	insight := models.InsightRecord{
		Status:             models.StatusNormal,
		RiskScore:          roundTo(risk, 2),
		RecommendedSetting: FanOff,
		AggregateIndex:     aggregate,
		AggregateCategory:  categorize(aggregate),
		Temperature:        roundTo(sample.Temperature, 1),
		Humidity:           roundTo(sample.Humidity, 1),
	}

	switch {
	case risk > criticalRiskThreshold:
		insight.Anomaly = true
		insight.Status = models.StatusCritical
		insight.RecommendedSetting = FanFull
	case risk > warningRiskThreshold:
		insight.Anomaly = true
		insight.Status = models.StatusWarning
		insight.RecommendedSetting = FanHalf
	}

	return insight
}

// subIndex scales one raw channel reading onto the 0-500 index range, capped
// at full scale.
func subIndex(raw float64) float64 {
	return math.Min(raw/fullScaleReading*maxIndex, maxIndex)
}

// categorize maps an already-clamped aggregate index to its EPA category.
// Boundaries are closed on the upper end: 50.0 is still Good.
func categorize(index float64) models.AQICategory {
	switch {
	case index <= 50:
		return models.AQIGood
	case index <= 100:
		return models.AQIModerate
	case index <= 150:
		return models.AQIUnhealthySensitive
	case index <= 200:
		return models.AQIUnhealthy
	case index <= 300:
		return models.AQIVeryUnhealthy
	default:
		return models.AQIHazardous
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func roundTo(v float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(v*pow) / pow
}
