package http

import (
	"net/http"

	"github.com/mauv0809/courtchart/internal/config"
	"github.com/mauv0809/courtchart/internal/metrics"
	"github.com/mauv0809/courtchart/internal/processor"
	"github.com/mauv0809/courtchart/internal/tournament"
)

type Server struct {
	Processor      *processor.Processor
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Router         *http.ServeMux
}

// ScheduleRequest is the body of POST /schedule.
type ScheduleRequest struct {
	Format      string                  `json:"format"`
	Competitors []tournament.Competitor `json:"competitors"`
}

// OverrideRequest is the body of PUT /tournaments/{id}/overrides/{wins}.
type OverrideRequest struct {
	ResolvedOrder []int  `json:"resolved_order"`
	Reason        string `json:"reason"`
	ResolvedBy    string `json:"resolved_by"`
}

// ErrorResponse is written for every failed request.
type ErrorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}
