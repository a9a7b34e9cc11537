package override

// Ledger records manual tie resolutions. There is at most one active override
// per (tournament, wins level); recording replaces, never merges.
type Ledger interface {
	RecordOverride(tournamentID string, winsLevel int, resolvedOrder []int, reason, resolvedBy string) (*ManualOverride, error)
	ClearOverride(tournamentID string, winsLevel int) error
	GetOverrides(tournamentID string) ([]ManualOverride, error)
	GetHistory(tournamentID string) ([]AuditEntry, error)
}
