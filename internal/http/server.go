package http

import (
	"net/http"

	"github.com/mauv0809/courtchart/internal/config"
	"github.com/mauv0809/courtchart/internal/metrics"
	"github.com/mauv0809/courtchart/internal/processor"
)

func NewServer(processor *processor.Processor, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config) *Server {
	server := &Server{
		Processor:      processor,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	s.Router.Handle("GET /metrics", s.MetricsHandler)
	s.Router.Handle("GET /health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("GET /formats", Chain(s.ListFormatsHandler(), paramsMiddleware))
	s.Router.Handle("GET /formats/{id}", Chain(s.GetFormatHandler(), paramsMiddleware))
	s.Router.Handle("POST /schedule", Chain(s.ScheduleHandler(), paramsMiddleware, limitBody))
	s.Router.Handle("POST /standings", Chain(s.StandingsHandler(), paramsMiddleware, limitBody))
	s.Router.Handle("GET /tournaments/{id}/overrides", Chain(s.ListOverridesHandler(), paramsMiddleware))
	s.Router.Handle("GET /tournaments/{id}/overrides/history", Chain(s.OverrideHistoryHandler(), paramsMiddleware))
	s.Router.Handle("PUT /tournaments/{id}/overrides/{wins}", Chain(s.RecordOverrideHandler(), paramsMiddleware, limitBody))
	s.Router.Handle("DELETE /tournaments/{id}/overrides/{wins}", Chain(s.ClearOverrideHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
