package override

import "sync"

// MockLedger is a mock implementation of the Ledger interface for testing.
// It is safe for concurrent use.
type MockLedger struct {
	mu sync.Mutex

	// Spies for method calls
	RecordOverrideFunc func(tournamentID string, winsLevel int, resolvedOrder []int, reason, resolvedBy string) (*ManualOverride, error)
	ClearOverrideFunc  func(tournamentID string, winsLevel int) error
	GetOverridesFunc   func(tournamentID string) ([]ManualOverride, error)
	GetHistoryFunc     func(tournamentID string) ([]AuditEntry, error)

	// Call records
	RecordOverrideCalls []ManualOverride
	ClearOverrideCalls  []struct {
		TournamentID string
		WinsLevel    int
	}
	GetOverridesCalls []string
}

// NewMock creates a new mock instance.
func NewMock() *MockLedger {
	return &MockLedger{}
}

// Reset clears all call records.
func (m *MockLedger) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RecordOverrideCalls = nil
	m.ClearOverrideCalls = nil
	m.GetOverridesCalls = nil
}

func (m *MockLedger) RecordOverride(tournamentID string, winsLevel int, resolvedOrder []int, reason, resolvedBy string) (*ManualOverride, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RecordOverrideCalls = append(m.RecordOverrideCalls, ManualOverride{
		TournamentID:  tournamentID,
		WinsLevel:     winsLevel,
		ResolvedOrder: resolvedOrder,
		Reason:        reason,
		ResolvedBy:    resolvedBy,
	})
	if m.RecordOverrideFunc != nil {
		return m.RecordOverrideFunc(tournamentID, winsLevel, resolvedOrder, reason, resolvedBy)
	}
	return &ManualOverride{TournamentID: tournamentID, WinsLevel: winsLevel, ResolvedOrder: resolvedOrder, Reason: reason, ResolvedBy: resolvedBy}, nil
}

func (m *MockLedger) ClearOverride(tournamentID string, winsLevel int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ClearOverrideCalls = append(m.ClearOverrideCalls, struct {
		TournamentID string
		WinsLevel    int
	}{tournamentID, winsLevel})
	if m.ClearOverrideFunc != nil {
		return m.ClearOverrideFunc(tournamentID, winsLevel)
	}
	return nil
}

func (m *MockLedger) GetOverrides(tournamentID string) ([]ManualOverride, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetOverridesCalls = append(m.GetOverridesCalls, tournamentID)
	if m.GetOverridesFunc != nil {
		return m.GetOverridesFunc(tournamentID)
	}
	return nil, nil
}

func (m *MockLedger) GetHistory(tournamentID string) ([]AuditEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetHistoryFunc != nil {
		return m.GetHistoryFunc(tournamentID)
	}
	return nil, nil
}
