package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	SchedulesGenerated *prometheus.CounterVec
	StandingsResolved  prometheus.Counter
	TieGroups          prometheus.Counter
	OverridesRecorded  prometheus.Counter
	OverridesCleared   prometheus.Counter
	ValidationFailures *prometheus.CounterVec
	ResolveDuration    prometheus.Histogram
	StartupTimeSeconds prometheus.Gauge
}
