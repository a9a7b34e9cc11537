package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, reg *prometheus.Registry) string {
	t.Helper()
	rr := httptest.NewRecorder()
	NewMetricsHandler(reg).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	return rr.Body.String()
}

func TestServiceCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := NewService(reg)

	s.IncSchedulesGenerated("moc-8")
	s.IncSchedulesGenerated("moc-8")
	s.IncSchedulesGenerated("pairs-4")
	s.IncStandingsResolved()
	s.AddTieGroups(3)
	s.IncValidationFailures("competitor_count")
	s.IncOverridesRecorded()

	body := scrape(t, reg)
	assert.Contains(t, body, `courtchart_schedules_generated_total{format="moc-8"} 2`)
	assert.Contains(t, body, `courtchart_schedules_generated_total{format="pairs-4"} 1`)
	assert.Contains(t, body, "courtchart_standings_resolved_total 1")
	assert.Contains(t, body, "courtchart_tie_groups_total 3")
	assert.Contains(t, body, `courtchart_validation_failures_total{reason="competitor_count"} 1`)
	assert.Contains(t, body, "courtchart_overrides_recorded_total 1")
	assert.Contains(t, body, "courtchart_overrides_cleared_total 0")
}

func TestMockRecordsCalls(t *testing.T) {
	m := NewMock()
	m.IncSchedulesGenerated("moc-5")
	m.AddTieGroups(2)
	m.AddTieGroups(1)
	m.ObserveResolveDuration(0.01)

	assert.Equal(t, 1, m.SchedulesGenerated("moc-5"))
	assert.Equal(t, 3, m.TieGroups())
	assert.Equal(t, []float64{0.01}, m.ResolveDurations())
}
