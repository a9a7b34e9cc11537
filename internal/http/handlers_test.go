package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/courtchart/internal/config"
	"github.com/mauv0809/courtchart/internal/format"
	"github.com/mauv0809/courtchart/internal/metrics"
	"github.com/mauv0809/courtchart/internal/override"
	"github.com/mauv0809/courtchart/internal/processor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const circularSnapshot = `{"tournament_id": "spring-open", "format": "pairs-4",` +
	` "competitors": [{"id": "A", "seed": 1}, {"id": "B", "seed": 2}, {"id": "C", "seed": 3}, {"id": "D", "seed": 4}],` +
	` "results": [` +
	`{"match_id": "r1-c1", "set_number": 1, "score_a": 15, "score_b": 13},` +
	`{"match_id": "r1-c2", "set_number": 1, "score_a": 15, "score_b": 12},` +
	`{"match_id": "r2-c1", "set_number": 1, "score_a": 13, "score_b": 15},` +
	`{"match_id": "r2-c2", "set_number": 1, "score_a": 15, "score_b": 0},` +
	`{"match_id": "r3-c1", "set_number": 1, "score_a": 15, "score_b": 10},` +
	`{"match_id": "r3-c2", "set_number": 1, "score_a": 15, "score_b": 10}]}`

// setupTestServer initializes a server backed by the in-memory ledger and a
// private Prometheus registry.
func setupTestServer(t *testing.T) *Server {
	t.Helper()

	reg := prometheus.NewRegistry()
	metricsSvc := metrics.NewService(reg)
	metricsHandler := metrics.NewMetricsHandler(reg)
	proc := processor.New(format.Default(), override.NewMemoryLedger(), metricsSvc)
	return NewServer(proc, metricsSvc, metricsHandler, config.Config{})
}

func serve(t *testing.T, server *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&v))
	return v
}

func TestHealthCheckHandler(t *testing.T) {
	server := setupTestServer(t)

	rr := serve(t, server, "GET", "/health", "")

	assert.Equal(t, http.StatusOK, rr.Code, "handler returned wrong status code")
	assert.Equal(t, "OK!", rr.Body.String(), "handler returned unexpected body")
}

func TestVerboseLoggingIsRequestScoped(t *testing.T) {
	before := log.GetLevel()

	var levels []log.Level
	h := paramsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		levels = append(levels, log.FromContext(r.Context()).GetLevel())
		assert.Equal(t, before, log.GetLevel(), "global level changed while serving")
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health?verbose=true", nil))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, []log.Level{log.DebugLevel, before}, levels)
	assert.Equal(t, before, log.GetLevel())

	rr := serve(t, setupTestServer(t), "GET", "/health?verbose=true", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, before, log.GetLevel())
}

func TestFormatsHandlers(t *testing.T) {
	server := setupTestServer(t)

	t.Run("lists every format", func(t *testing.T) {
		rr := serve(t, server, "GET", "/formats", "")
		require.Equal(t, http.StatusOK, rr.Code)
		formats := decodeBody[[]format.Format](t, rr)
		assert.Len(t, formats, len(format.Default().All()))
	})

	t.Run("searches", func(t *testing.T) {
		rr := serve(t, server, "GET", "/formats?q=moc-8", "")
		require.Equal(t, http.StatusOK, rr.Code)
		formats := decodeBody[[]format.Format](t, rr)
		require.NotEmpty(t, formats)
		assert.Equal(t, "moc-8", formats[0].ID)
	})

	t.Run("selects by category and count", func(t *testing.T) {
		rr := serve(t, server, "GET", "/formats?category=pair&count=6", "")
		require.Equal(t, http.StatusOK, rr.Code)
		formats := decodeBody[[]format.Format](t, rr)
		require.Len(t, formats, 1)
		assert.Equal(t, "pairs-6", formats[0].ID)

		rr = serve(t, server, "GET", "/formats?category=pair&count=11", "")
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

		rr = serve(t, server, "GET", "/formats?count=many", "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("gets one format", func(t *testing.T) {
		rr := serve(t, server, "GET", "/formats/pairs-4", "")
		require.Equal(t, http.StatusOK, rr.Code)
		f := decodeBody[format.Format](t, rr)
		assert.Equal(t, 4, f.RequiredCount)
		assert.Len(t, f.Table, 6)
	})

	t.Run("unknown format is not found", func(t *testing.T) {
		rr := serve(t, server, "GET", "/formats/moc-40", "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
		resp := decodeBody[ErrorResponse](t, rr)
		assert.Equal(t, "unknown_format", resp.Reason)
	})
}

func TestScheduleHandler(t *testing.T) {
	server := setupTestServer(t)

	t.Run("generates a schedule", func(t *testing.T) {
		body := `{"format": "pairs-4", "competitors": [{"id": "A", "seed": 1}, {"id": "B", "seed": 2}, {"id": "C", "seed": 3}, {"id": "D", "seed": 4}]}`
		rr := serve(t, server, "POST", "/schedule", body)
		require.Equal(t, http.StatusOK, rr.Code)

		res := decodeBody[processor.ScheduleResult](t, rr)
		assert.Equal(t, "pairs-4", res.Format.ID)
		require.Len(t, res.Matches, 6)
		assert.Equal(t, "r1-c1", res.Matches[0].ID)
	})

	t.Run("wrong count is unprocessable", func(t *testing.T) {
		rr := serve(t, server, "POST", "/schedule", `{"format": "pairs-4", "competitors": [{"id": "A", "seed": 1}]}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		resp := decodeBody[ErrorResponse](t, rr)
		assert.Equal(t, "competitor_count", resp.Reason)
	})

	t.Run("malformed body", func(t *testing.T) {
		rr := serve(t, server, "POST", "/schedule", `{"format": `)
		assert.Equal(t, http.StatusBadRequest, rr.Code)

		rr = serve(t, server, "POST", "/schedule", `{"format": "pairs-4", "players": []}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("wrong method", func(t *testing.T) {
		rr := serve(t, server, "GET", "/schedule", "")
		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	})
}

func TestStandingsHandler(t *testing.T) {
	server := setupTestServer(t)

	t.Run("json", func(t *testing.T) {
		rr := serve(t, server, "POST", "/standings", circularSnapshot)
		require.Equal(t, http.StatusOK, rr.Code)

		res := decodeBody[processor.StandingsResult](t, rr)
		ids := make([]string, len(res.Projection))
		for i, p := range res.Projection {
			ids[i] = p.CompetitorID
		}
		assert.Equal(t, []string{"A", "C", "B", "D"}, ids)
		require.Len(t, res.Steps, 1)
		assert.Equal(t, 2, res.Steps[0].WinsLevel)
	})

	t.Run("csv", func(t *testing.T) {
		rr := serve(t, server, "POST", "/standings?format=csv", circularSnapshot)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "text/csv", rr.Header().Get("Content-Type"))
		assert.Contains(t, rr.Header().Get("Content-Disposition"), "spring-open-standings.csv")

		lines := strings.Split(strings.TrimSpace(rr.Body.String()), "\n")
		require.Len(t, lines, 5)
		assert.Equal(t, "Position,Competitor,Seed,Wins,Point Differential", lines[0])
		assert.True(t, strings.HasPrefix(lines[1], "1,A,1,2,"))
	})

	t.Run("text includes the trace", func(t *testing.T) {
		rr := serve(t, server, "POST", "/standings?format=text", circularSnapshot)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Tie at 2 wins: B (#2), A (#1), C (#3)")
	})

	t.Run("unsupported output", func(t *testing.T) {
		rr := serve(t, server, "POST", "/standings?format=xml", circularSnapshot)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("invalid snapshot", func(t *testing.T) {
		rr := serve(t, server, "POST", "/standings", `{"format": "pairs-4"}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		resp := decodeBody[ErrorResponse](t, rr)
		assert.Equal(t, "snapshot", resp.Reason)
	})

	t.Run("inconsistent results", func(t *testing.T) {
		body := strings.Replace(circularSnapshot, `"r3-c2"`, `"r9-c9"`, 1)
		rr := serve(t, server, "POST", "/standings", body)
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		resp := decodeBody[ErrorResponse](t, rr)
		assert.Equal(t, "set_result", resp.Reason)
	})
}

func TestOverrideHandlers(t *testing.T) {
	server := setupTestServer(t)

	rr := serve(t, server, "PUT", "/tournaments/spring-open/overrides/2",
		`{"resolved_order": [2, 1, 3], "reason": "coin toss", "resolved_by": "director"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	recorded := decodeBody[override.ManualOverride](t, rr)
	assert.NotEmpty(t, recorded.ID)
	assert.Equal(t, 2, recorded.WinsLevel)

	t.Run("stored override applies to standings", func(t *testing.T) {
		rr := serve(t, server, "POST", "/standings", circularSnapshot)
		require.Equal(t, http.StatusOK, rr.Code)
		res := decodeBody[processor.StandingsResult](t, rr)
		require.NotEmpty(t, res.Projection)
		assert.Equal(t, "B", res.Projection[0].CompetitorID)
		assert.True(t, res.Standings[0].ManuallyResolved)
	})

	t.Run("lists overrides", func(t *testing.T) {
		rr := serve(t, server, "GET", "/tournaments/spring-open/overrides", "")
		require.Equal(t, http.StatusOK, rr.Code)
		overrides := decodeBody[[]override.ManualOverride](t, rr)
		require.Len(t, overrides, 1)
		assert.Equal(t, []int{2, 1, 3}, overrides[0].ResolvedOrder)
	})

	t.Run("rejects invalid overrides", func(t *testing.T) {
		rr := serve(t, server, "PUT", "/tournaments/spring-open/overrides/2",
			`{"resolved_order": [2, 2], "reason": "coin toss", "resolved_by": "director"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

		rr = serve(t, server, "PUT", "/tournaments/spring-open/overrides/two",
			`{"resolved_order": [2, 1], "reason": "coin toss", "resolved_by": "director"}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("clears and keeps history", func(t *testing.T) {
		rr := serve(t, server, "DELETE", "/tournaments/spring-open/overrides/2", "")
		require.Equal(t, http.StatusNoContent, rr.Code)

		rr = serve(t, server, "GET", "/tournaments/spring-open/overrides", "")
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, decodeBody[[]override.ManualOverride](t, rr))

		rr = serve(t, server, "GET", "/tournaments/spring-open/overrides/history", "")
		require.Equal(t, http.StatusOK, rr.Code)
		history := decodeBody[[]override.AuditEntry](t, rr)
		require.Len(t, history, 2)
		assert.Equal(t, override.ActionRecord, history[0].Action)
		assert.Equal(t, override.ActionClear, history[1].Action)
	})
}

func TestMetricsHandler(t *testing.T) {
	server := setupTestServer(t)

	serve(t, server, "POST", "/standings", circularSnapshot)
	serve(t, server, "GET", "/formats/moc-40", "")

	rr := serve(t, server, "GET", "/metrics", "")
	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "courtchart_standings_resolved_total 1")
	assert.Contains(t, body, "courtchart_tie_groups_total 1")
}
