package override

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidOverride is returned for an override that is malformed or does not
// match the tie group it claims to resolve.
var ErrInvalidOverride = errors.New("invalid override")

// ManualOverride is a director's explicit ordering of the tie group at one wins level.
type ManualOverride struct {
	ID            string    `json:"id" yaml:"id,omitempty"`
	TournamentID  string    `json:"tournament_id" yaml:"tournament_id,omitempty"`
	WinsLevel     int       `json:"wins_level" yaml:"wins_level"`
	ResolvedOrder []int     `json:"resolved_order" yaml:"resolved_order"`
	Reason        string    `json:"reason" yaml:"reason"`
	ResolvedBy    string    `json:"resolved_by" yaml:"resolved_by"`
	CreatedAt     time.Time `json:"created_at" yaml:"created_at,omitempty"`
}

// Action is the kind of change recorded in the audit history.
type Action string

const (
	ActionRecord Action = "RECORD"
	ActionClear  Action = "CLEAR"
)

// AuditEntry is one append-only record of a ledger change.
type AuditEntry struct {
	ID            string    `json:"id"`
	OverrideID    string    `json:"override_id"`
	TournamentID  string    `json:"tournament_id"`
	WinsLevel     int       `json:"wins_level"`
	Action        Action    `json:"action"`
	ResolvedOrder []int     `json:"resolved_order"`
	Reason        string    `json:"reason"`
	ResolvedBy    string    `json:"resolved_by"`
	CreatedAt     time.Time `json:"created_at"`
}

// Validate checks the fields that do not depend on the standings.
func (o ManualOverride) Validate() error {
	if strings.TrimSpace(o.TournamentID) == "" {
		return fmt.Errorf("%w: tournament id is required", ErrInvalidOverride)
	}
	return o.validateOrder()
}

func (o ManualOverride) validateOrder() error {
	if o.WinsLevel < 0 {
		return fmt.Errorf("%w: wins level %d is negative", ErrInvalidOverride, o.WinsLevel)
	}
	if strings.TrimSpace(o.Reason) == "" {
		return fmt.Errorf("%w: reason is required", ErrInvalidOverride)
	}
	if strings.TrimSpace(o.ResolvedBy) == "" {
		return fmt.Errorf("%w: resolved by is required", ErrInvalidOverride)
	}
	if len(o.ResolvedOrder) < 2 {
		return fmt.Errorf("%w: an order needs at least two seeds, got %d", ErrInvalidOverride, len(o.ResolvedOrder))
	}
	seen := make(map[int]bool, len(o.ResolvedOrder))
	for _, seed := range o.ResolvedOrder {
		if seed < 1 {
			return fmt.Errorf("%w: seed %d is not positive", ErrInvalidOverride, seed)
		}
		if seen[seed] {
			return fmt.Errorf("%w: seed %d appears twice", ErrInvalidOverride, seed)
		}
		seen[seed] = true
	}
	return nil
}

// ValidateInline checks an override supplied alongside a snapshot, where the
// tournament id and timestamp are implied.
func (o ManualOverride) ValidateInline() error {
	return o.validateOrder()
}

func newOverride(tournamentID string, winsLevel int, order []int, reason, resolvedBy string, now time.Time) (*ManualOverride, error) {
	o := &ManualOverride{
		ID:            uuid.NewString(),
		TournamentID:  tournamentID,
		WinsLevel:     winsLevel,
		ResolvedOrder: append([]int(nil), order...),
		Reason:        strings.TrimSpace(reason),
		ResolvedBy:    strings.TrimSpace(resolvedBy),
		CreatedAt:     now.UTC(),
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}

func auditFor(o ManualOverride, action Action, now time.Time) AuditEntry {
	return AuditEntry{
		ID:            uuid.NewString(),
		OverrideID:    o.ID,
		TournamentID:  o.TournamentID,
		WinsLevel:     o.WinsLevel,
		Action:        action,
		ResolvedOrder: append([]int(nil), o.ResolvedOrder...),
		Reason:        o.Reason,
		ResolvedBy:    o.ResolvedBy,
		CreatedAt:     now.UTC(),
	}
}
