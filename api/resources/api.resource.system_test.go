// FilePath: api/resources/api.resource.system_test.go
package resources

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AtulCoder09/Antigravity-AQI-System/internal/models"
)

func TestHealthCheck(t *testing.T) {
	h := &SystemHandlers{}

	r, _ := http.NewRequest("GET", "/v1/health", nil)
	rec := httptest.NewRecorder()
	h.HealthCheck(rec, r)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestScorePreview(t *testing.T) {
	h := &SystemHandlers{}

	r, _ := http.NewRequest("GET", "/v1/score?mq135=1000&mq8=500&mq9=3000&dust=800&temperature=25&humidity=40", nil)
	rec := httptest.NewRecorder()
	h.ScorePreview(rec, r)

	assert.Equal(t, http.StatusOK, rec.Code)

	var insight models.InsightRecord
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &insight))
	assert.True(t, insight.Anomaly)
	assert.Equal(t, models.StatusCritical, insight.Status)
	assert.Equal(t, 255, insight.RecommendedSetting)
	assert.InDelta(t, 1860, insight.RiskScore, 0.001)
	assert.Equal(t, models.AQIUnhealthy, insight.AggregateCategory)
}

func TestScorePreviewDefaultsMissingChannels(t *testing.T) {
	h := &SystemHandlers{}

	r, _ := http.NewRequest("GET", "/v1/score", nil)
	rec := httptest.NewRecorder()
	h.ScorePreview(rec, r)

	assert.Equal(t, http.StatusOK, rec.Code)

	var insight models.InsightRecord
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &insight))
	assert.False(t, insight.Anomaly)
	assert.Equal(t, models.StatusNormal, insight.Status)
	assert.Zero(t, insight.RiskScore)
	assert.Equal(t, models.AQIGood, insight.AggregateCategory)
}

func TestScorePreviewRejectsBadParams(t *testing.T) {
	h := &SystemHandlers{}

	r, _ := http.NewRequest("GET", "/v1/score?mq135=notanumber", nil)
	rec := httptest.NewRecorder()
	h.ScorePreview(rec, r)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "decode", body["type"])
}
