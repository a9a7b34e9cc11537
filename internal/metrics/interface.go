package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncSchedulesGenerated(formatID string)
	IncStandingsResolved()
	AddTieGroups(n int)
	IncOverridesRecorded()
	IncOverridesCleared()
	IncValidationFailures(reason string)
	ObserveResolveDuration(duration float64)
	SetStartupTime(duration float64)
}
