package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counterValue ищет значение счетчика name с подмножеством меток labels
func counterValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)

	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, metric := range mf.GetMetric() {
			matched := 0
			for _, lp := range metric.GetLabel() {
				if v, ok := labels[lp.GetName()]; ok && v == lp.GetValue() {
					matched++
				}
			}
			if matched == len(labels) {
				return metric.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func TestMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegisterer("test", reg)

	m.IncBookingOutcome("booked")
	m.IncBookingOutcome("booked")
	m.IncBookingOutcome("staff_conflict")
	m.ObserveQuery("exec", time.Millisecond, errors.New("boom"))
	m.ObserveHTTP("GET", "/api/v1/services", 200, time.Millisecond)

	assert.Equal(t, 2.0, counterValue(t, reg, "booking_outcomes_total", map[string]string{"outcome": "booked"}))
	assert.Equal(t, 1.0, counterValue(t, reg, "booking_outcomes_total", map[string]string{"outcome": "staff_conflict"}))
	assert.Equal(t, 1.0, counterValue(t, reg, "db_query_errors_total", map[string]string{"operation": "exec"}))
	assert.Equal(t, 1.0, counterValue(t, reg, "http_requests_total",
		map[string]string{"method": "GET", "route": "/api/v1/services", "status": "200", "service": "test"}))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncBookingOutcome("booked")
		m.ObserveQuery("exec", time.Millisecond, nil)
		m.ObserveHTTP("GET", "/", 200, time.Millisecond)
	})
}
