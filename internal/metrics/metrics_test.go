package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gatherMetric(t *testing.T, reg *prometheus.Registry, name string) *dto.MetricFamily {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func TestMetrics_RecordHTTPRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegistry(reg, nil)

	m.RecordHTTPRequest("GET", "/api/pets", 200, 42*time.Millisecond)
	m.RecordHTTPRequest("GET", "/api/pets", 200, 13*time.Millisecond)
	m.RecordHTTPRequest("GET", "/api/pets", 404, 5*time.Millisecond)

	mf := gatherMetric(t, reg, "pet_service_http_requests_total")
	require.NotNil(t, mf)

	byStatus := map[string]float64{}
	for _, metric := range mf.Metric {
		for _, label := range metric.Label {
			if label.GetName() == "status" {
				byStatus[label.GetValue()] = metric.GetCounter().GetValue()
			}
		}
	}
	assert.Equal(t, float64(2), byStatus["2xx"])
	assert.Equal(t, float64(1), byStatus["4xx"])
}

func TestMetrics_BusinessCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegistry(reg, nil)

	m.IncrementUserRegistered()
	m.IncrementPetCreated()
	m.IncrementPetCreated()
	m.IncrementDocumentUploaded()

	for name, want := range map[string]float64{
		"pet_service_user_registered_total":   1,
		"pet_service_pet_created_total":       2,
		"pet_service_document_uploaded_total": 1,
	} {
		mf := gatherMetric(t, reg, name)
		require.NotNil(t, mf, name)
		assert.Equal(t, want, mf.Metric[0].GetCounter().GetValue(), name)
	}
}

func TestMetrics_BusinessGauges(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegistry(reg, nil)

	m.SetUsersTotal(5)
	m.SetPetsTotal(12)
	m.SetRemindersPendingTotal(3)

	for name, want := range map[string]float64{
		"pet_service_users_total":             5,
		"pet_service_pets_total":              12,
		"pet_service_reminders_pending_total": 3,
	} {
		mf := gatherMetric(t, reg, name)
		require.NotNil(t, mf, name)
		assert.Equal(t, want, mf.Metric[0].GetGauge().GetValue(), name)
	}
}

func TestCategorizeStatus(t *testing.T) {
	assert.Equal(t, "2xx", categorizeStatus(204))
	assert.Equal(t, "3xx", categorizeStatus(301))
	assert.Equal(t, "4xx", categorizeStatus(422))
	assert.Equal(t, "5xx", categorizeStatus(503))
	assert.Equal(t, "unknown", categorizeStatus(100))
}

func TestShouldSkipEndpoint(t *testing.T) {
	assert.True(t, ShouldSkipEndpoint("/metrics"))
	assert.True(t, ShouldSkipEndpoint("/health"))
	assert.True(t, ShouldSkipEndpoint("/ready"))
	assert.False(t, ShouldSkipEndpoint("/api/pets"))
}
