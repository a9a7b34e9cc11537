package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                 sync.Mutex
	schedulesGenerated map[string]int
	standingsResolved  int
	tieGroups          int
	overridesRecorded  int
	overridesCleared   int
	validationFailures map[string]int
	resolveDurations   []float64
	startupTime        float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		schedulesGenerated: make(map[string]int),
		validationFailures: make(map[string]int),
		resolveDurations:   make([]float64, 0),
	}
}

func (m *Mock) IncSchedulesGenerated(formatID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.schedulesGenerated[formatID]++
}

func (m *Mock) IncStandingsResolved() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.standingsResolved++
}

func (m *Mock) AddTieGroups(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tieGroups += n
}

func (m *Mock) IncOverridesRecorded() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.overridesRecorded++
}

func (m *Mock) IncOverridesCleared() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.overridesCleared++
}

func (m *Mock) IncValidationFailures(reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.validationFailures[reason]++
}

func (m *Mock) ObserveResolveDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resolveDurations = append(m.resolveDurations, duration)
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// SchedulesGenerated returns how often IncSchedulesGenerated was called for a format.
func (m *Mock) SchedulesGenerated(formatID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.schedulesGenerated[formatID]
}

// StandingsResolved returns the number of times IncStandingsResolved was called.
func (m *Mock) StandingsResolved() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.standingsResolved
}

// TieGroups returns the sum passed to AddTieGroups.
func (m *Mock) TieGroups() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tieGroups
}

// OverridesRecorded returns the number of times IncOverridesRecorded was called.
func (m *Mock) OverridesRecorded() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.overridesRecorded
}

// OverridesCleared returns the number of times IncOverridesCleared was called.
func (m *Mock) OverridesCleared() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.overridesCleared
}

// ValidationFailures returns how often IncValidationFailures was called for a reason.
func (m *Mock) ValidationFailures(reason string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.validationFailures[reason]
}

// ResolveDurations returns every observed resolve duration.
func (m *Mock) ResolveDurations() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]float64(nil), m.resolveDurations...)
}
