package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		SchedulesGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "courtchart_schedules_generated_total",
			Help: "The total number of schedules generated, by format.",
		}, []string{"format"}),
		StandingsResolved: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "courtchart_standings_resolved_total",
			Help: "The total number of standings computed and resolved.",
		}),
		TieGroups: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "courtchart_tie_groups_total",
			Help: "The total number of tie groups broken by the resolver.",
		}),
		OverridesRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "courtchart_overrides_recorded_total",
			Help: "The total number of manual overrides recorded.",
		}),
		OverridesCleared: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "courtchart_overrides_cleared_total",
			Help: "The total number of manual overrides cleared.",
		}),
		ValidationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "courtchart_validation_failures_total",
			Help: "The total number of rejected inputs, by reason.",
		}, []string{"reason"}),
		ResolveDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "courtchart_resolve_duration_seconds",
			Help:    "The duration of aggregating and resolving standings.",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "courtchart_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.SchedulesGenerated,
		s.StandingsResolved,
		s.TieGroups,
		s.OverridesRecorded,
		s.OverridesCleared,
		s.ValidationFailures,
		s.ResolveDuration,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncSchedulesGenerated(formatID string) {
	s.SchedulesGenerated.WithLabelValues(formatID).Inc()
}

func (s *Service) IncStandingsResolved() {
	s.StandingsResolved.Inc()
}

func (s *Service) AddTieGroups(n int) {
	s.TieGroups.Add(float64(n))
}

func (s *Service) IncOverridesRecorded() {
	s.OverridesRecorded.Inc()
}

func (s *Service) IncOverridesCleared() {
	s.OverridesCleared.Inc()
}

func (s *Service) IncValidationFailures(reason string) {
	s.ValidationFailures.WithLabelValues(reason).Inc()
}

func (s *Service) ObserveResolveDuration(duration float64) {
	s.ResolveDuration.Observe(duration)
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
