package override

import (
	"cmp"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

type ledgerKey struct {
	tournamentID string
	winsLevel    int
}

// memoryLedger keeps overrides in process memory. It is safe for concurrent use.
type memoryLedger struct {
	mu        sync.RWMutex
	overrides map[ledgerKey]ManualOverride
	history   map[string][]AuditEntry
	now       func() time.Time
}

// NewMemoryLedger returns a Ledger that does not persist across restarts.
func NewMemoryLedger() Ledger {
	return &memoryLedger{
		overrides: make(map[ledgerKey]ManualOverride),
		history:   make(map[string][]AuditEntry),
		now:       time.Now,
	}
}

func (l *memoryLedger) RecordOverride(tournamentID string, winsLevel int, resolvedOrder []int, reason, resolvedBy string) (*ManualOverride, error) {
	o, err := newOverride(strings.TrimSpace(tournamentID), winsLevel, resolvedOrder, reason, resolvedBy, l.now())
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.overrides[ledgerKey{o.TournamentID, o.WinsLevel}] = *o
	l.history[o.TournamentID] = append(l.history[o.TournamentID], auditFor(*o, ActionRecord, o.CreatedAt))
	log.Debug("Recorded override in memory", "tournament", o.TournamentID, "wins", o.WinsLevel, "id", o.ID)

	out := *o
	out.ResolvedOrder = slices.Clone(o.ResolvedOrder)
	return &out, nil
}

func (l *memoryLedger) ClearOverride(tournamentID string, winsLevel int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := ledgerKey{strings.TrimSpace(tournamentID), winsLevel}
	o, ok := l.overrides[key]
	if !ok {
		return nil
	}
	delete(l.overrides, key)
	l.history[o.TournamentID] = append(l.history[o.TournamentID], auditFor(o, ActionClear, l.now()))
	return nil
}

func (l *memoryLedger) GetOverrides(tournamentID string) ([]ManualOverride, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []ManualOverride
	for key, o := range l.overrides {
		if key.tournamentID == tournamentID {
			o.ResolvedOrder = slices.Clone(o.ResolvedOrder)
			out = append(out, o)
		}
	}
	slices.SortFunc(out, func(a, b ManualOverride) int {
		return cmp.Compare(b.WinsLevel, a.WinsLevel)
	})
	return out, nil
}

func (l *memoryLedger) GetHistory(tournamentID string) ([]AuditEntry, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	entries := l.history[tournamentID]
	out := make([]AuditEntry, len(entries))
	for i, e := range entries {
		e.ResolvedOrder = slices.Clone(e.ResolvedOrder)
		out[i] = e
	}
	return out, nil
}
